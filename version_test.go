package lpstake_test

import (
	"testing"

	"github.com/lpstake/lpstake"
	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	defer func(c string) { lpstake.GitCommit = c }(lpstake.GitCommit)

	lpstake.GitCommit = ""
	assert.Equal(t, "v0.1.0-dev", lpstake.Version())

	lpstake.GitCommit = "12345678"
	assert.Equal(t, "v0.1.0-dev 12345678", lpstake.Version())
}
