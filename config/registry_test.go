package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainerrors "poncoocr/domain/errors"
)

func TestRegistry_Register(t *testing.T) {
	tests := []struct {
		name    string
		opt     Option
		wantErr error
	}{
		{
			name: "int with default",
			opt:  Option{Name: "epochs", Kind: KindInt, Default: 10, Help: "epochs"},
		},
		{
			name: "float without default",
			opt:  Option{Name: "dropout", Kind: KindFloat, Help: "dropout"},
		},
		{
			name: "path with default",
			opt:  Option{Name: "out_dir", Kind: KindPath, Default: "/tmp/out", Help: "out"},
		},
		{
			name:    "empty name",
			opt:     Option{Kind: KindInt, Default: 1},
			wantErr: domainerrors.ErrInvalidOption,
		},
		{
			name:    "int option with float default",
			opt:     Option{Name: "epochs", Kind: KindInt, Default: 1.5},
			wantErr: domainerrors.ErrInvalidOption,
		},
		{
			name:    "float option with int default",
			opt:     Option{Name: "rate", Kind: KindFloat, Default: 1},
			wantErr: domainerrors.ErrInvalidOption,
		},
		{
			name:    "string option with int default",
			opt:     Option{Name: "dir", Kind: KindString, Default: 3},
			wantErr: domainerrors.ErrInvalidOption,
		},
		{
			name:    "unknown kind",
			opt:     Option{Name: "odd", Kind: Kind(42), Default: "x"},
			wantErr: domainerrors.ErrInvalidOption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			err := reg.Register(tt.opt)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, domainerrors.ErrConfiguration)
				assert.Equal(t, 0, reg.Len())
				return
			}
			require.NoError(t, err)
			got, ok := reg.Lookup(tt.opt.Name)
			require.True(t, ok)
			assert.Equal(t, tt.opt, got)
		})
	}
}

func TestRegistry_DuplicateName(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Option{Name: KCandidates, Kind: KindInt, Default: 5}))

	err := reg.Register(Option{Name: KCandidates, Kind: KindInt, Default: 7})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateOption)
	assert.ErrorIs(t, err, domainerrors.ErrConfiguration)
	assert.Contains(t, err.Error(), KCandidates)

	// The first registration is kept.
	opt, ok := reg.Lookup(KCandidates)
	require.True(t, ok)
	assert.Equal(t, 5, opt.Default)
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_OptionsKeepOrder(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"c", "a", "b"} {
		require.NoError(t, reg.Register(Option{Name: name, Kind: KindString, Default: name}))
	}

	var names []string
	for _, opt := range reg.Options() {
		names = append(names, opt.Name)
	}
	assert.Equal(t, []string{"c", "a", "b"}, names)
}

func TestRegistry_Defaults(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Option{Name: "with", Kind: KindInt, Default: 3}))
	require.NoError(t, reg.Register(Option{Name: "without", Kind: KindFloat}))

	assert.Equal(t, map[string]interface{}{"with": 3}, reg.Defaults())
}

func TestRegistry_BindFlags(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Option{Name: "count", Kind: KindInt, Default: 4, Help: "how many"}))
	require.NoError(t, reg.Register(Option{Name: "rate", Kind: KindFloat, Help: "how fast"}))
	require.NoError(t, reg.Register(Option{Name: "dir", Kind: KindPath, Default: "/data/x", Help: "where"}))

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	require.NoError(t, reg.BindFlags(fs))

	count := fs.Lookup("count")
	require.NotNil(t, count)
	assert.Equal(t, "4", count.DefValue)
	assert.Equal(t, "how many", count.Usage)

	require.NoError(t, fs.Parse([]string{"--rate=0.5", "--dir", "/elsewhere"}))

	rate, err := fs.GetFloat64("rate")
	require.NoError(t, err)
	assert.Equal(t, 0.5, rate)

	dir, err := fs.GetString("dir")
	require.NoError(t, err)
	assert.Equal(t, "/elsewhere", dir)
	assert.False(t, fs.Changed("count"))
}

func TestRegistry_BindFlagsTwice(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Option{Name: "count", Kind: KindInt, Default: 4}))

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	require.NoError(t, reg.BindFlags(fs))

	err := reg.BindFlags(fs)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateOption)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "int", KindInt.String())
	assert.Equal(t, "float", KindFloat.String())
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "path", KindPath.String())
	assert.Equal(t, "kind(9)", Kind(9).String())
}
