package errors_test

import (
	"testing"

	errorsmod "cosmossdk.io/errors"
	errors2 "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/axelarnetwork/polls/utils/errors"
)

var errTest = errorsmod.Register("errors_test", 2, "test error")

func TestKeyVals(t *testing.T) {
	var err error = errors.With(errors2.New("test"), "key", "val")
	err = errors2.Wrap(err, "wrapped")

	assert.EqualValues(t, []interface{}{"key", "val"}, errors.KeyVals(err))
}

func TestKeyVals_Nested(t *testing.T) {
	err := errors.With(errorsmod.Wrap(errTest, "inner"), "inner", 1)
	err = errors.With(err, "outer", 2, "dangling")

	assert.EqualValues(t, []interface{}{"outer", 2, "inner", 1}, errors.KeyVals(err))
	assert.ErrorIs(t, err, errTest)
	assert.Equal(t, "inner: test error", err.Error())

	codespace, code, _ := errorsmod.ABCIInfo(err, false)
	assert.Equal(t, "errors_test", codespace)
	assert.EqualValues(t, 2, code)
}

func TestWith_Nil(t *testing.T) {
	assert.NoError(t, errors.With(nil, "key", "val"))
	assert.Nil(t, errors.KeyVals(nil))
}
