package build_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/dumbvim/internal/domain/build"
)

func TestInfo_String(t *testing.T) {
	info := build.Info{Version: "v0.3.0", Commit: "abc1234"}

	assert.Equal(t, "dumbvim v0.3.0 (abc1234)", info.String())
}

func TestContributorsNamesProject(t *testing.T) {
	assert.Equal(t, []string{"The dumbvim contributors"}, build.Contributors())
}
