package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/greenledger/greenledger/internal/pipeline"
)

func TestListPageSizeBoundToConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	_ = listCmd()

	// The flag default flows through the binding.
	assert.Equal(t, pipeline.DefaultPageSize, viper.GetInt("list.page-size"))

	// A configured value overrides the default when the flag is unset.
	viper.Set("list.page-size", 5)
	assert.Equal(t, 5, viper.GetInt("list.page-size"))
}
