package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Seat Covers", "seat-covers"},
		{"LED  Lights", "led-lights"},
		{"Wheels & Tyres", "wheels-tyres"},
		{"  trim  ", "trim"},
		{"Audio", "audio"},
		{"4x4 Gear!", "4x4-gear"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestRole_AtLeast(t *testing.T) {
	assert.True(t, RoleSuperAdmin.AtLeast(RoleAdmin))
	assert.True(t, RoleAdmin.AtLeast(RoleAdmin))
	assert.False(t, RoleUser.AtLeast(RoleAdmin))
	assert.False(t, Role("unknown").AtLeast(RoleUser))
}

func TestSettings_PatchAndValidity(t *testing.T) {
	off := false
	on := true

	settings := DefaultSettings()
	next := SettingsPatch{RazorpayEnabled: &off}.Apply(settings)

	assert.True(t, next.Valid())
	assert.False(t, next.RazorpayEnabled)
	assert.True(t, next.CODEnabled)

	invalid := SettingsPatch{CODEnabled: &off}.Apply(next)
	assert.False(t, invalid.Valid())

	restored := SettingsPatch{RazorpayEnabled: &on}.Apply(invalid)
	assert.True(t, restored.Valid())
}
