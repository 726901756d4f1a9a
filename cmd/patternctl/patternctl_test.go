package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"patternmap-api/internal/catalog"
	"patternmap-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestList_JSON(t *testing.T) {
	out, err := run(t, "", "list")
	require.NoError(t, err)

	var records []models.PatternRecord
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	assert.Len(t, records, 18)
}

func TestList_YAML(t *testing.T) {
	out, err := run(t, "", "list", "-o", "yaml")
	require.NoError(t, err)

	var records []models.PatternRecord
	require.NoError(t, yaml.Unmarshal([]byte(out), &records))
	require.Len(t, records, 18)
	assert.Equal(t, "p6m", records[0].SymmetryGroup)
}

func TestList_UnknownFormat(t *testing.T) {
	_, err := run(t, "", "list", "-o", "xml")
	assert.Error(t, err)
}

func TestShow_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.csv")
	content := "Location,Latitude,Longitude,FileName,SymmetryGroup,Century,Notes,Tiling Search Link\n" +
		`"Alhambra, Granada",37.17,-3.58,a.png,p4m,14,,` + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	out, err := run(t, "", "show", "0", "--file", path)
	require.NoError(t, err)

	var rec models.PatternRecord
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "Alhambra, Granada", rec.Location)
}

func TestShow_OutOfRange(t *testing.T) {
	_, err := run(t, "", "show", "42")
	assert.Error(t, err)
}

func TestNext_Wraps(t *testing.T) {
	out, err := run(t, "", "next", "0", "--direction", "prev")
	require.NoError(t, err)

	var result models.IndexedPattern
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 17, result.Index)
}

func TestMarkers(t *testing.T) {
	out, err := run(t, "", "markers")
	require.NoError(t, err)
	assert.Contains(t, out, `"FeatureCollection"`)
}

func TestBrowse(t *testing.T) {
	records := catalog.Default(nil).Records()
	var out bytes.Buffer

	err := browse(strings.NewReader("right\n3\nArrowRight\nleft\n3\nn\n17\nn\nbogus\nquit\nn\n"), &out, records)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "(no pattern selected)", lines[0], "stepping without a selection does nothing")
	assert.True(t, strings.HasPrefix(lines[1], "[4/18] Golestan Palace, Tehran"))
	assert.True(t, strings.HasPrefix(lines[2], "[5/18] "))
	assert.True(t, strings.HasPrefix(lines[3], "[4/18] "))
	assert.Equal(t, "(no pattern selected)", lines[4], "selecting the open pattern closes it")
	assert.Equal(t, "(no pattern selected)", lines[5])
	assert.True(t, strings.HasPrefix(lines[6], "[18/18] "))
	assert.True(t, strings.HasPrefix(lines[7], "[1/18] The Great Mosque"))
	assert.Equal(t, `unknown command "bogus"`, lines[8])
}
