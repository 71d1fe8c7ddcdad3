package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStages(t *testing.T) {
	cases := []struct {
		name    string
		stages  string
		wantErr bool
	}{
		{"valid chain", `[{"order":1,"name":"Draft review","role_code":"EE-Z1","sla_hours":24},
			{"order":2,"name":"Approval","role_code":"SE-NORTH","sla_hours":48}]`, false},
		{"not an array", `{"order":1}`, true},
		{"empty array", `[]`, true},
		{"missing role code", `[{"order":1,"name":"Draft review"}]`, true},
		{"missing name", `[{"order":1,"role_code":"EE-Z1"}]`, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateStages(json.RawMessage(tc.stages))
			if tc.wantErr {
				require.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
