package messages

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPattern(t *testing.T) {
	r := Pattern(regexp.MustCompile(`^[A-Z0-9]{18}[0-9]{2}$`))

	require.Nil(t, r.Validate("529900T8BM49AURSDO55"))

	err := r.Validate("not-an-lei")
	require.NotNil(t, err)
	require.Equal(t, CodeBadPattern, err.(*ValidationError).Code)

	err = r.Validate("")
	require.NotNil(t, err)
	require.Equal(t, CodeBadPattern, err.(*ValidationError).Code)
}

func TestPatternAllowsEmptyWhenPatternDoes(t *testing.T) {
	r := Pattern(regexp.MustCompile(`^[0-9]*$`))
	require.Nil(t, r.Validate(""))
}
