package fixture

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudokupad/internal/domain"
	"svw.info/sudokupad/internal/store"
)

func newStore() *store.Store {
	return store.New(store.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func TestDemoFileMatchesDemo(t *testing.T) {
	s, err := LoadFile(filepath.Join("testdata", "demo.yaml"))
	require.NoError(t, err)
	require.Equal(t, Demo(), s)
}

func TestApplyDemo(t *testing.T) {
	st := newStore()
	Demo().Apply(st)

	b := st.Board()
	require.Equal(t, 5, b[15])
	require.Equal(t, 6, b[18])
	require.Equal(t, 7, b[27])
	require.Equal(t, 3, b.Filled())
	require.Equal(t, domain.OptionSet{7, 3, 2}, st.OptionsAt(65))
	require.Equal(t, domain.OptionSet{1, 8}, st.OptionsAt(69))
	require.Equal(t, domain.NoSelection, st.SelectedCell())
	require.False(t, st.EditingOptions())
}

func TestLoadSelectionAndMode(t *testing.T) {
	doc := `
selected: 40
editing: true
options:
  - {index: 40, values: [4, 4, 5]}
`
	s, err := Load(strings.NewReader(doc))
	require.NoError(t, err)

	st := newStore()
	s.Apply(st)
	require.Equal(t, 40, st.SelectedCell())
	require.True(t, st.EditingOptions())
	require.Equal(t, domain.OptionSet{4, 5}, st.OptionsAt(40))
}

func TestLoadEmpty(t *testing.T) {
	s, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, Seed{}, s)
}

func TestLoadRejects(t *testing.T) {
	cases := []struct {
		name, doc, field string
	}{
		{"index", "board: [{index: 81, value: 1}]", "index"},
		{"value", "board: [{index: 0, value: 10}]", "value"},
		{"option", "options: [{index: 0, values: [0]}]", "option"},
		{"selected", "selected: 99", "index"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.doc))
			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr), "err = %v", err)
			require.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestLoadUnknownKey(t *testing.T) {
	_, err := Load(strings.NewReader("bord: []"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode fixture")
}
