package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"youi-build/internal/core"
	"youi-build/internal/shared"
	"youi-build/internal/types"
)

// platformValue validates --platform while flags are parsed.
type platformValue struct {
	target *types.Platform
}

func (v platformValue) String() string {
	if v.target == nil {
		return ""
	}
	return string(*v.target)
}

func (v platformValue) Set(value string) error {
	platform, err := core.ParsePlatform(value)
	if err != nil {
		return fmt.Errorf("%s (supported platforms: %s)", errorMessage(err), platformList())
	}
	*v.target = platform
	return nil
}

func (platformValue) Type() string { return "PLATFORM" }

type configurationValue struct {
	target *types.Configuration
}

func (v configurationValue) String() string {
	if v.target == nil {
		return ""
	}
	return string(*v.target)
}

func (v configurationValue) Set(value string) error {
	config, err := core.ParseConfiguration(value)
	if err != nil {
		return fmt.Errorf("%s", errorMessage(err))
	}
	*v.target = config
	return nil
}

func (configurationValue) Type() string { return "CONFIGURATION" }

// defineValue collects repeated -d NAME=VALUE pairs.
type defineValue struct {
	target map[string]string
}

func (v defineValue) String() string {
	keys := make([]string, 0, len(v.target))
	for key := range v.target {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+v.target[key])
	}
	return "[" + strings.Join(pairs, ",") + "]"
}

func (v defineValue) Set(value string) error {
	key, val, err := core.ParseDefine(value)
	if err != nil {
		return fmt.Errorf("%s", errorMessage(err))
	}
	v.target[key] = val
	return nil
}

func (defineValue) Type() string { return "NAME=VALUE" }

// existingDirValue checks the directory as soon as the flag is parsed. A missing
// directory is held in missing and returned from PreRunE as a precondition failure.
type existingDirValue struct {
	target  *string
	missing *error
	remedy  string
}

func (v existingDirValue) String() string {
	if v.target == nil {
		return ""
	}
	return *v.target
}

func (v existingDirValue) Set(value string) error {
	*v.target = value
	*v.missing = nil
	if !shared.IsDir(value) {
		*v.missing = errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("the given build directory '%s' does not exist. %s", value, v.remedy))
	}
	return nil
}

func (existingDirValue) Type() string { return "DIRECTORY" }

func platformList() string {
	names := make([]string, 0, len(types.Platforms))
	for _, platform := range types.Platforms {
		names = append(names, string(platform))
	}
	return strings.Join(names, ", ")
}

func configurationList() string {
	names := make([]string, 0, len(types.Configurations))
	for _, config := range types.Configurations {
		names = append(names, string(config))
	}
	return strings.Join(names, ", ")
}
