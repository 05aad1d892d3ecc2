// Package config loads the extract's connection and output settings.
//
// The primary format is INI (configs.ini, section [postgresql]); files ending in
// .yaml or .yml are read as YAML with the same shape. Both formats support
// ${VAR} syntax for environment variable interpolation before parsing.
package config
