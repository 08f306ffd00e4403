package utils

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/errors"
	"github.com/lpstake/lpstake/lpstaketest"
	"github.com/lpstake/lpstake/lpstaketest/assert"
	"github.com/lpstake/lpstake/store"
	"github.com/tendermint/tendermint/libs/log"
)

func TestLogging(t *testing.T) {
	tx := &lpstaketest.Tx{Msg: &lpstaketest.Msg{RoutePath: "pool/deposit"}}

	cases := map[string]struct {
		handler  lpstake.Handler
		check    bool
		wantErr  *errors.Error
		wantLogs []string
	}{
		"successful deliver logged at info": {
			handler:  &lpstaketest.Handler{DeliverResult: lpstake.DeliverResult{Log: "deposited"}},
			wantLogs: []string{"I[", "deposited", "path=pool/deposit", "action=pool/deposit"},
		},
		"successful check logged at debug": {
			handler:  &lpstaketest.Handler{CheckResult: lpstake.CheckResult{Log: "checked"}},
			check:    true,
			wantLogs: []string{"D[", "checked", "path=pool/deposit"},
		},
		"failure logged at error": {
			handler:  &lpstaketest.Handler{DeliverErr: errors.ErrInsufficientBalance},
			wantErr:  errors.ErrInsufficientBalance,
			wantLogs: []string{"E[", "insufficient balance"},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var buf bytes.Buffer
			ctx := lpstake.WithLogger(context.Background(), log.NewTMLogger(&buf))
			stack := lpstaketest.Decorate(lpstaketest.Decorate(tc.handler, NewLogging()), NewActionTagger())

			var err error
			if tc.check {
				_, err = stack.Check(ctx, store.MemStore(), tx)
			} else {
				_, err = stack.Deliver(ctx, store.MemStore(), tx)
			}
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}

			out := buf.String()
			for _, want := range tc.wantLogs {
				if !strings.Contains(out, want) {
					t.Errorf("want %q in the log output: %s", want, out)
				}
			}
		})
	}
}

func TestActionTaggerWithoutMessage(t *testing.T) {
	var buf bytes.Buffer
	ctx := lpstake.WithLogger(context.Background(), log.NewTMLogger(&buf))
	stack := lpstaketest.Decorate(lpstaketest.Decorate(&lpstaketest.Handler{}, NewLogging()), NewActionTagger())

	_, err := stack.Deliver(ctx, store.MemStore(), &lpstaketest.Tx{})
	assert.Nil(t, err)
	if !strings.Contains(buf.String(), "action=(missing)") {
		t.Fatalf("unexpected log output: %s", buf.String())
	}
}
