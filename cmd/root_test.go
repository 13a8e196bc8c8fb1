package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geohash-kit/geohash"
	"geohash-kit/models"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestEncodeCmd(t *testing.T) {
	out, err := run(t, "encode", "--", "-122.4194", "37.7749")
	require.NoError(t, err)
	assert.Equal(t, "9q8yyk8ytpxr\n", out)

	out, err = run(t, "encode", "-p", "7", "--", "-122.4194", "37.7749")
	require.NoError(t, err)
	assert.Equal(t, "9q8yyk8\n", out)
}

func TestEncodeCmdJSON(t *testing.T) {
	out, err := run(t, "--output", "json", "encode", "-p", "1", "0", "0")
	require.NoError(t, err)

	var loc models.Location
	require.NoError(t, json.Unmarshal([]byte(out), &loc))
	assert.Equal(t, models.Location{Geohash: "s", Precision: 1}, loc)
}

func TestEncodeCmdErrors(t *testing.T) {
	_, err := run(t, "encode", "200", "0")
	assert.ErrorIs(t, err, geohash.ErrInvalidCoordinate)

	_, err = run(t, "encode", "-p", "0", "1", "1")
	assert.ErrorIs(t, err, geohash.ErrInvalidPrecision)

	_, err = run(t, "encode", "east", "0")
	assert.ErrorContains(t, err, "invalid longitude")

	_, err = run(t, "encode", "1")
	assert.Error(t, err)
}

func TestConfigPrecision(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geohash.yaml")
	require.NoError(t, os.WriteFile(path, []byte("geohash:\n  precision: 5\n"), 0o600))

	out, err := run(t, "--config", path, "encode", "0", "0")
	require.NoError(t, err)
	assert.Equal(t, "s0000\n", out)

	out, err = run(t, "--config", path, "encode", "-p", "2", "0", "0")
	require.NoError(t, err)
	assert.Equal(t, "s0\n", out)
}

func TestDecodeCmd(t *testing.T) {
	out, err := run(t, "decode", "s")
	require.NoError(t, err)
	assert.Equal(t, "22.5 22.5\n", out)

	out, err = run(t, "decode", "--format", "pointerr", "s")
	require.NoError(t, err)
	assert.Equal(t, "22.5 22.5 22.5 22.5\n", out)

	out, err = run(t, "decode", "-f", "bbox", "S")
	require.NoError(t, err)
	assert.Equal(t, "0 0 45 45\n", out)

	out, err = run(t, "decode", "-f", "polygon", "s")
	require.NoError(t, err)
	assert.Equal(t, "0 0\n45 0\n45 45\n0 45\n0 0\n", out)

	_, err = run(t, "decode", "-f", "wkt", "s")
	assert.ErrorContains(t, err, "unknown format")

	_, err = run(t, "decode", "a")
	assert.ErrorIs(t, err, geohash.ErrInvalidCharacter)
}

func TestDecodeCmdJSON(t *testing.T) {
	out, err := run(t, "--output", "json", "decode", "-f", "polygon", "s")
	require.NoError(t, err)

	var cell models.Cell
	require.NoError(t, json.Unmarshal([]byte(out), &cell))
	assert.Equal(t, "s", cell.Geohash)
	assert.Equal(t, [4]float64{0, 0, 45, 45}, cell.BBox)
	assert.Len(t, cell.Polygon, 5)
}

func TestNeighborsCmd(t *testing.T) {
	out, err := run(t, "neighbors", "s")
	require.NoError(t, err)
	assert.Equal(t, "g u v\ne s t\n7 k m\n", out)

	out, err = run(t, "--output", "json", "neighbors", "zzz")
	require.NoError(t, err)
	var n models.Neighbors
	require.NoError(t, json.Unmarshal([]byte(out), &n))
	assert.Equal(t, "zzz", n.Grid[geohash.Center])
	assert.Equal(t, "bp8", n.Grid[geohash.SouthEast])
}

func TestParentChildrenPrefixCmds(t *testing.T) {
	out, err := run(t, "parent", "9q8yyk8")
	require.NoError(t, err)
	assert.Equal(t, "9q8yyk\n", out)

	out, err = run(t, "parent", "9")
	require.NoError(t, err)
	assert.Equal(t, "9\n", out)

	_, err = run(t, "parent", "9qa")
	assert.ErrorIs(t, err, geohash.ErrInvalidCharacter)

	out, err = run(t, "--output", "json", "children", "9q")
	require.NoError(t, err)
	var children []string
	require.NoError(t, json.Unmarshal([]byte(out), &children))
	require.Len(t, children, 32)
	assert.Equal(t, "9q0", children[0])
	assert.Equal(t, "9qz", children[31])

	out, err = run(t, "prefix", "9q8yyk8", "9q8yykd")
	require.NoError(t, err)
	assert.Equal(t, "9q8yyk\n", out)

	out, err = run(t, "prefix", "9q8", "dr5")
	require.NoError(t, err)
	assert.Equal(t, "\n", out)
}

func TestBBoxAreaCmds(t *testing.T) {
	out, err := run(t, "bbox", "s")
	require.NoError(t, err)
	assert.Equal(t, "0 0 45 45\n", out)

	out, err = run(t, "area", "9q8yyk8")
	require.NoError(t, err)
	assert.Equal(t, "18343.423\n", out)

	out, err = run(t, "--output", "json", "area", "9q8yyk8")
	require.NoError(t, err)
	var area models.Area
	require.NoError(t, json.Unmarshal([]byte(out), &area))
	assert.InDelta(t, 18343.423368414267, area.SquareMeters, 1e-6)
}

func TestCoverCmd(t *testing.T) {
	out, err := run(t, "--output", "json", "cover", "-p", "3", "179.9", "89.9")
	require.NoError(t, err)
	var keys []string
	require.NoError(t, json.Unmarshal([]byte(out), &keys))
	assert.Equal(t, []string{"zzz", "zzy", "bpb", "zzw", "zzx", "bp8"}, keys)
}

func TestGeoJSONCmd(t *testing.T) {
	out, err := run(t, "geojson", "s", "9q8yyk8")
	require.NoError(t, err)

	var fc struct {
		Type     string            `json:"type"`
		Features []json.RawMessage `json:"features"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	assert.Len(t, fc.Features, 2)
}

func TestOutputFlagValidation(t *testing.T) {
	_, err := run(t, "--output", "xml", "parent", "9q")
	assert.ErrorContains(t, err, "output.format")
}

func TestCoverCmdUntil(t *testing.T) {
	out, err := run(t, "cover", "-p", "7", "--until", "9q8yyxn71", "--", "-122.4194", "37.7749")
	require.NoError(t, err)
	assert.Equal(t, "9q8yy\n9q8zj\n9q8zn\n9q8zp\n9q8yv\n9q8yz\n9q8yt\n9q8yw\n9q8yx\n", out)

	_, err = run(t, "cover", "-p", "7", "--until", "9qa", "0", "0")
	assert.ErrorIs(t, err, geohash.ErrInvalidCharacter)
}
