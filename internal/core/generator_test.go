package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"youi-build/internal/types"
	"youi-build/tests/testutil"
)

func TestDefaultGenerator(t *testing.T) {
	withNinja := testutil.StaticProbe{"ninja": "/usr/bin/ninja", "make": "/usr/bin/make"}
	withMake := testutil.StaticProbe{"make": "/usr/bin/make"}

	tests := []struct {
		platform types.Platform
		probe    testutil.StaticProbe
		want     string
	}{
		{types.PlatformAndroid, nil, GeneratorAndroidStudio},
		{types.PlatformIOS, nil, GeneratorXcode},
		{types.PlatformTvOS, nil, GeneratorXcode},
		{types.PlatformOSX, nil, GeneratorXcode},
		{types.PlatformUWP, nil, "Visual Studio 15 Win64"},
		{types.PlatformVS2017, nil, "Visual Studio 15 Win64"},
		{types.PlatformPS4, nil, "Visual Studio 14"},
		{types.PlatformLinux, nil, "Unix Makefiles"},
		{types.PlatformTizenNaCl, withNinja, "Eclipse CDT4 - Ninja"},
		{types.PlatformTizenNaCl, withMake, "Eclipse CDT4 - Unix Makefiles"},
		{types.PlatformRoku2, withNinja, "Ninja"},
		{types.PlatformRoku4, withMake, "Unix Makefiles"},
	}
	for _, tt := range tests {
		t.Run(string(tt.platform), func(t *testing.T) {
			got, err := DefaultGenerator(tt.platform, tt.probe)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultGeneratorWithoutBuildTools(t *testing.T) {
	_, err := DefaultGenerator(types.PlatformRoku4, testutil.StaticProbe{})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "could not find ninja or unix make")
}

func TestIsMultiConfigGenerator(t *testing.T) {
	assert.True(t, IsMultiConfigGenerator("Visual Studio 14"))
	assert.True(t, IsMultiConfigGenerator(GeneratorXcode))
	assert.True(t, IsMultiConfigGenerator(GeneratorAndroidStudio))
	assert.False(t, IsMultiConfigGenerator(GeneratorNinja))
	assert.False(t, IsMultiConfigGenerator(GeneratorEclipseMake))
}
