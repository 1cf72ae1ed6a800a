// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/someonegg/stablematch"
)

type Instance struct {
	Doctors   stablematch.Profile `json:"doctors" yaml:"doctors"`
	Hospitals stablematch.Profile `json:"hospitals" yaml:"hospitals"`
}

type Result struct {
	Matches   stablematch.Matches `json:"matches" yaml:"matches"`
	Proposals int                 `json:"proposals" yaml:"proposals"`
	Stable    bool                `json:"stable" yaml:"stable"`
}

func doMatch(ctx context.Context, inputFile, outputFile string, verbose bool) error {
	var inst Instance
	if err := loadFile(inputFile, &inst); err != nil {
		return fmt.Errorf("load instance file failed: %w", err)
	}
	if len(inst.Doctors) == 0 && len(inst.Hospitals) == 0 {
		return errors.New("empty instance")
	}

	matches, proposals, err := stablematch.DeferredAcceptance(verbose).Match(inst.Doctors, inst.Hospitals)
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	stable, err := stablematch.IsStable(inst.Doctors, inst.Hospitals, matches)
	if err != nil {
		return fmt.Errorf("check stability failed: %w", err)
	}

	res := Result{Matches: matches, Proposals: proposals, Stable: stable}
	fmt.Printf("doctors: %v, proposals: %v, stable: %v\n", len(matches), proposals, stable)

	if err := writeFile(outputFile, res); err != nil {
		return fmt.Errorf("write matching file failed: %w", err)
	}

	return nil
}

func isYAML(file string) bool {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func loadFile(file string, v interface{}) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	if isYAML(file) {
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		return decoder.Decode(v)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

func writeFile(file string, v interface{}) error {
	var buf bytes.Buffer

	if isYAML(file) {
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		if err := encoder.Close(); err != nil {
			return err
		}
	} else {
		encoder := json.NewEncoder(&buf)
		encoder.SetIndent("", "   ")
		if err := encoder.Encode(v); err != nil {
			return err
		}
	}

	return os.WriteFile(file, buf.Bytes(), 0644)
}
