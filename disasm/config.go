package disasm

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// LoadConfig executes a Starlark profile and overlays its globals on the
// default configuration. Recognized globals: base and data (integer
// addresses) and terminator (mnemonic string). Absent globals keep their
// defaults.
func LoadConfig(path string) (config Config, err error) {
	config = DefaultConfig()

	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(&opts, &thread, path, nil, starlark.StringDict{})
	if err != nil {
		return
	}

	fields := map[string](*uint32){
		"base": &config.Base,
		"data": &config.Data,
	}
	for key, field := range fields {
		value, ok := globals[key]
		if !ok {
			continue
		}
		st_int, ok := value.(starlark.Int)
		if !ok {
			err = ErrConfigValue(key)
			return
		}
		st_u64, ok := st_int.Uint64()
		if !ok || st_u64 > 0xffffffff {
			err = ErrConfigValue(key)
			return
		}
		*field = uint32(st_u64)
	}

	if value, ok := globals["terminator"]; ok {
		st_str, ok := value.(starlark.String)
		if !ok {
			err = ErrConfigValue("terminator")
			return
		}
		config.Terminator = string(st_str)
	}

	return
}
