package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vidshelf/vidshelf/constant"
	"github.com/vidshelf/vidshelf/filesystem"
	"github.com/vidshelf/vidshelf/where"
)

// UnknownKeyError is returned for keys that are not registered in Default.
type UnknownKeyError struct {
	Key     string
	Closest string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key %s, did you mean %s?", e.Key, e.Closest)
}

// Lookup returns the registered field for k.
func Lookup(k string) (Field, error) {
	if f, ok := Default[k]; ok {
		return f, nil
	}
	return Field{}, &UnknownKeyError{Key: k, Closest: Closest(k)}
}

// Closest returns the registered key with the smallest edit distance to k.
func Closest(k string) string {
	return lo.MinBy(lo.Keys(Default), func(a, b string) bool {
		da, db := levenshtein.Distance(k, a), levenshtein.Distance(k, b)
		if da == db {
			return a < b
		}
		return da < db
	})
}

// Parse converts raw command line values to the type of the field's default.
func (f *Field) Parse(raw []string) (any, error) {
	if len(raw) == 0 {
		return nil, errors.New("value is required")
	}

	switch f.Value.(type) {
	case string:
		return raw[0], nil
	case int:
		n, err := strconv.Atoi(strings.TrimSpace(raw[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid integer value: %s", raw[0])
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(strings.TrimSpace(raw[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value: %s", raw[0])
		}
		return b, nil
	case []string:
		return raw, nil
	case []int:
		ints := make([]int, 0, len(raw))
		for _, item := range raw {
			n, err := strconv.Atoi(strings.TrimSpace(item))
			if err != nil || n < 1 {
				return nil, fmt.Errorf("invalid positive integer value: %s", item)
			}
			ints = append(ints, n)
		}
		return ints, nil
	}

	return nil, fmt.Errorf("unsupported type %T for key %s", f.Value, f.Key)
}

// Path is the location of the configuration file.
func Path() string {
	return filepath.Join(where.Config(), constant.App+".toml")
}

// Save persists the active configuration, creating the file if needed.
func Save() error {
	err := viper.WriteConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfig()
	}
	return err
}

// Remove deletes the configuration file.
func Remove() error {
	return filesystem.API().Remove(Path())
}
