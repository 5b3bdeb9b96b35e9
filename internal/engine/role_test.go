package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"producer", RoleProducer},
		{"Consumer", RoleConsumer},
		{" consumer ", RoleConsumer},
		{"", RoleProducer},
		{"viewer", RoleProducer},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRole(tt.in))
		})
	}

	assert.True(t, IsValidRole("PRODUCER"))
	assert.False(t, IsValidRole("viewer"))
	assert.Equal(t, RoleConsumer, RoleProducer.Toggle())
	assert.Equal(t, RoleProducer, RoleConsumer.Toggle())
}
