package lpstake_test

import (
	"testing"

	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/errors"
	"github.com/lpstake/lpstake/lpstaketest"
	"github.com/lpstake/lpstake/lpstaketest/assert"
)

type loadableMsg struct {
	Note string
}

var _ lpstake.Msg = (*loadableMsg)(nil)

func (loadableMsg) Path() string { return "test/loadable" }

func (m *loadableMsg) Validate() error {
	if m.Note == "" {
		return errors.Field("Note", errors.ErrEmpty, "required")
	}
	return nil
}

func (m *loadableMsg) Marshal() ([]byte, error) { return lpstake.MarshalBinary(m) }

func (m *loadableMsg) Unmarshal(raw []byte) error { return lpstake.UnmarshalBinary(raw, m) }

func TestLoadMsg(t *testing.T) {
	cases := map[string]struct {
		tx      lpstake.Tx
		dest    interface{}
		wantErr *errors.Error
		want    string
	}{
		"pointer message": {
			tx:   &lpstaketest.Tx{Msg: &loadableMsg{Note: "hello"}},
			dest: &loadableMsg{},
			want: "hello",
		},
		"invalid message": {
			tx:      &lpstaketest.Tx{Msg: &loadableMsg{}},
			dest:    &loadableMsg{},
			wantErr: errors.ErrEmpty,
		},
		"message of a different type": {
			tx:      &lpstaketest.Tx{Msg: &lpstaketest.Msg{RoutePath: "foo/bar"}},
			dest:    &loadableMsg{},
			wantErr: errors.ErrInvalidType,
		},
		"no message": {
			tx:      &lpstaketest.Tx{},
			dest:    &loadableMsg{},
			wantErr: errors.ErrInvalidMsg,
		},
		"tx error": {
			tx:      &lpstaketest.Tx{Err: errors.ErrInvalidState},
			dest:    &loadableMsg{},
			wantErr: errors.ErrInvalidState,
		},
		"destination not a pointer": {
			tx:      &lpstaketest.Tx{Msg: &loadableMsg{Note: "hello"}},
			dest:    loadableMsg{},
			wantErr: errors.ErrHuman,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := lpstake.LoadMsg(tc.tx, tc.dest)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, tc.dest.(*loadableMsg).Note)
			}
		})
	}
}

func TestGetPath(t *testing.T) {
	assert.Equal(t, "test/loadable", lpstake.GetPath(&lpstaketest.Tx{Msg: &loadableMsg{}}))
	assert.Equal(t, "(missing)", lpstake.GetPath(&lpstaketest.Tx{}))
}

func TestCodecRoundTrip(t *testing.T) {
	msg := &loadableMsg{Note: "round trip"}
	raw, err := msg.Marshal()
	assert.Nil(t, err)

	var got loadableMsg
	assert.Nil(t, got.Unmarshal(raw))
	assert.Equal(t, *msg, got)

	assert.IsErr(t, errors.ErrInvalidInput, got.Unmarshal(nil))
}
