// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/someonegg/stablematch"
	"github.com/someonegg/stablematch/experiment"
	"github.com/someonegg/stablematch/prefgen"
)

func run(args ...string) error {
	return newApp().Run(append([]string{"stable-match"}, args...))
}

func TestGenAndMatch(t *testing.T) {
	dir := t.TempDir()

	for _, ext := range []string{".json", ".yaml"} {
		t.Run(ext, func(t *testing.T) {
			instFile := filepath.Join(dir, "instance"+ext)
			resFile := filepath.Join(dir, "matching"+ext)

			require.NoError(t, run("gen", "--n", "12", "--kind", prefgen.KindWeighted, "--seed", "3", "--output", instFile))

			var inst Instance
			require.NoError(t, loadFile(instFile, &inst))
			require.Len(t, inst.Doctors, 12)
			require.NoError(t, stablematch.Validate(inst.Doctors, inst.Hospitals))

			require.NoError(t, run("match", "--input", instFile, "--output", resFile))

			var res Result
			require.NoError(t, loadFile(resFile, &res))
			require.True(t, res.Stable)
			require.Len(t, res.Matches, 12)

			matches, proposals, err := stablematch.StableMatch(inst.Doctors, inst.Hospitals)
			require.NoError(t, err)
			require.Equal(t, matches, res.Matches)
			require.Equal(t, proposals, res.Proposals)
		})
	}
}

func TestMatch_HandWritten(t *testing.T) {
	dir := t.TempDir()
	instFile := filepath.Join(dir, "instance.yml")
	resFile := filepath.Join(dir, "matching.json")

	require.NoError(t, os.WriteFile(instFile, []byte(`
doctors:
  - id: D1
    prefs: [H1, H2]
  - id: D2
    prefs: [H1, H2]
hospitals:
  - id: H1
    prefs: [D2, D1]
  - id: H2
    prefs: [D1, D2]
`), 0644))

	require.NoError(t, run("m", "--input", instFile, "--output", resFile, "--verbose"))

	var res Result
	require.NoError(t, loadFile(resFile, &res))
	require.Equal(t, Result{
		Matches:   stablematch.Matches{"D1": "H2", "D2": "H1"},
		Proposals: 3,
		Stable:    true,
	}, res)
}

func TestMatch_Errors(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.json")

	t.Run("MissingFile", func(t *testing.T) {
		err := run("match", "--input", filepath.Join(dir, "nope.json"), "--output", out)
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Malformed", func(t *testing.T) {
		instFile := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(instFile, []byte(`{
			"doctors": [{"id": "D1", "prefs": ["H1", "H1"]}, {"id": "D2", "prefs": ["H1", "H2"]}],
			"hospitals": [{"id": "H1", "prefs": ["D1", "D2"]}, {"id": "H2", "prefs": ["D1", "D2"]}]
		}`), 0644))

		err := run("match", "--input", instFile, "--output", out)
		require.ErrorIs(t, err, stablematch.ErrMalformedProfile)
		require.NoFileExists(t, out)
	})

	t.Run("UnknownField", func(t *testing.T) {
		for file, data := range map[string]string{
			"typo.json": `{"doctor": [{"id": "D1", "prefs": ["H1"]}], "hospital": [{"id": "H1", "prefs": ["D1"]}]}`,
			"typo.yaml": "doctor:\n  - id: D1\n    prefs: [H1]\nhospital:\n  - id: H1\n    prefs: [D1]\n",
		} {
			instFile := filepath.Join(dir, file)
			require.NoError(t, os.WriteFile(instFile, []byte(data), 0644))

			err := run("match", "--input", instFile, "--output", out)
			require.ErrorContains(t, err, "load instance file failed", file)
			require.NoFileExists(t, out)
		}
	})

	t.Run("EmptyInstance", func(t *testing.T) {
		for file, data := range map[string]string{
			"empty.json": `{"doctors": [], "hospitals": []}`,
			"empty.yaml": "doctors: []\nhospitals: []\n",
		} {
			instFile := filepath.Join(dir, file)
			require.NoError(t, os.WriteFile(instFile, []byte(data), 0644))

			require.EqualError(t, run("match", "--input", instFile, "--output", out), "empty instance", file)
			require.NoFileExists(t, out)
		}
	})
}

func TestGen_Errors(t *testing.T) {
	out := filepath.Join(t.TempDir(), "instance.json")

	require.EqualError(t, run("gen", "--n", "0", "--output", out), "invalid n")
	require.ErrorIs(t, run("gen", "--n", "3", "--kind", "zipf", "--output", out), prefgen.ErrUnknownKind)
}

func TestExperiment(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.json")

	require.NoError(t, run("experiment",
		"--kind", prefgen.KindUniform,
		"--ns", "3,5",
		"--sweep-trials", "2",
		"--n", "4",
		"--trials", "10",
		"--bins", "3",
		"--workers", "2",
		"--output", out))

	var rep experiment.Report
	require.NoError(t, loadFile(out, &rep))
	require.Equal(t, prefgen.KindUniform, rep.Kind)
	require.Len(t, rep.AverageProposals, 2)
	require.Equal(t, 3, rep.AverageProposals[0].N)
	require.Equal(t, 5, rep.AverageProposals[1].N)
	require.Len(t, rep.AveragePartnerRanks, 2)
	require.Len(t, rep.ProposalDistribution.Percent, 3)
	require.Len(t, rep.RankDistribution.Doctor, 4)
	require.Equal(t, 10, rep.Runner.Trials)

	require.EqualError(t, run("experiment", "--ns", "0", "--output", out), "invalid ns")
	require.EqualError(t, run("experiment", "--bins", "-1", "--output", out), "invalid bins")
}
