package keyboard_test

import (
	"io"
	"testing"

	"github.com/keywire/keywire/keyboard"
	"github.com/stretchr/testify/assert"
)

func TestReportUnmarshal(t *testing.T) {
	type testCase struct {
		name    string
		raw     []byte
		wantErr error
		want    keyboard.Report
	}

	testCases := []testCase{
		{
			name:    "empty",
			raw:     nil,
			wantErr: io.ErrUnexpectedEOF,
		},
		{
			name:    "two bytes",
			raw:     []byte{0x02, 0x00},
			wantErr: io.ErrUnexpectedEOF,
		},
		{
			name: "minimum three bytes",
			raw:  []byte{0x02, 0x00, 0x04},
			want: keyboard.Report{Modifiers: keyboard.ModLeftShift, Key: keyboard.KeyA},
		},
		{
			name: "full boot report",
			raw:  []byte{0x01, 0x00, 0x05, 0x06, 0x07, 0x00, 0x00, 0x00},
			want: keyboard.Report{Modifiers: keyboard.ModLeftCtrl, Key: keyboard.KeyB},
		},
		{
			name: "release report",
			raw:  []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
			want: keyboard.Report{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var r keyboard.Report
			err := r.UnmarshalBinary(tc.raw)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, r)
		})
	}
}
