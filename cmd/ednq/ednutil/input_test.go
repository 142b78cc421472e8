package ednutil_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"

	"github.com/chaisql/edn/cmd/ednq/ednutil"
)

const body = `[[17592186048482 "hello REST world"]]`

func gzipped(t *testing.T, data string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func zstded(t *testing.T, data string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestReadInput(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		compression ednutil.Compression
	}{
		{"plain", []byte(body), ednutil.None},
		{"gzip", gzipped(t, body), ednutil.Gzip},
		{"zstd", zstded(t, body), ednutil.Zstd},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			in, err := ednutil.ReadInput(test.name, bytes.NewReader(test.data))
			require.NoError(t, err)
			require.Equal(t, test.name, in.Name)
			require.Equal(t, test.compression, in.Compression)
			require.Equal(t, body, string(in.Data))
		})
	}

	t.Run("short input", func(t *testing.T) {
		in, err := ednutil.ReadInput("-", bytes.NewReader([]byte("1")))
		require.NoError(t, err)
		require.Equal(t, ednutil.None, in.Compression)
		require.Equal(t, "1", string(in.Data))
	})

	t.Run("empty input", func(t *testing.T) {
		in, err := ednutil.ReadInput("-", bytes.NewReader(nil))
		require.NoError(t, err)
		require.Empty(t, in.Data)
	})

	t.Run("truncated gzip stream", func(t *testing.T) {
		data := gzipped(t, body)
		_, err := ednutil.ReadInput("broken", bytes.NewReader(data[:len(data)/2]))
		require.Error(t, err)
		require.Contains(t, err.Error(), "broken")
	})
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "result.edn.gz")
	require.NoError(t, os.WriteFile(path, gzipped(t, body), 0o600))

	in, err := ednutil.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, path, in.Name)
	require.Equal(t, ednutil.Gzip, in.Compression)
	require.Equal(t, body, string(in.Data))

	_, err = ednutil.ReadFile(filepath.Join(dir, "missing.edn"))
	require.Error(t, err)
}
