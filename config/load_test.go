package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// snapshotConfig restores the package globals after a test mutates them.
func snapshotConfig(t *testing.T) {
	t.Helper()
	player, spawn, weapon, enemy := Player, Spawn, Weapon, Enemy
	t.Cleanup(func() {
		Player, Spawn, Weapon, Enemy = player, spawn, weapon, enemy
	})
}

func TestApplyOverridesOnlyPresentFields(t *testing.T) {
	snapshotConfig(t)
	lives := Player.StartingLives

	err := Apply([]byte("player:\n  speed: 3.5\nspawn:\n  waveperiod: 2048\n"))
	require.NoError(t, err)

	assert.Equal(t, 3.5, Player.Speed)
	assert.Equal(t, lives, Player.StartingLives)
	assert.Equal(t, 2048, Spawn.WavePeriod)
	assert.Equal(t, 256, Spawn.Dice)
}

func TestApplyRejectsZeroPeriod(t *testing.T) {
	snapshotConfig(t)
	before := Weapon

	err := Apply([]byte("weapon:\n  bulletperiod: 0\n"))
	require.Error(t, err)
	assert.Equal(t, before, Weapon, "config must be untouched on error")
}

func TestApplyRejectsMalformedYAML(t *testing.T) {
	snapshotConfig(t)
	err := Apply([]byte("player: [unterminated"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	snapshotConfig(t)
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enemy:\n  basic:\n    health: 5\n"), 0o644))

	require.NoError(t, LoadFile(path))
	assert.Equal(t, 5, Enemy.Basic.Health)
	assert.Equal(t, "Basic", Enemy.Basic.Name)
}

func TestLoadFileMissing(t *testing.T) {
	err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
