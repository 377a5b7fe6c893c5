package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codegenio/codegenio/internal/state"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func sampleState(email string) state.AppState {
	return state.AppState{
		Account: &state.Account{
			ID:    "account-1",
			Name:  "Ana García",
			Email: email,
			Plan:  "Familiar",
		},
		Profiles: []state.Profile{
			{
				ID:               "profile-1",
				AccountID:        "account-1",
				Name:             "Ana",
				AvatarColor:      "azul",
				XP:               200,
				CompletedLessons: []string{"ini-1", "ini-2"},
			},
		},
		ActiveProfileID: "profile-1",
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	st := openTestStore(t)
	email := "ana@ejemplo.com"

	require.NoError(t, st.SaveAccountState(email, sampleState(email)))
	require.NoError(t, st.SetActiveAccount(email))

	got, err := st.LoadActiveAccountState()
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "Ana García", got.Account.Name)
	assert.Equal(t, "profile-1", got.ActiveProfileID)
	require.Len(t, got.Profiles, 1)
	assert.Equal(t, 200, got.Profiles[0].XP)
	assert.Equal(t, []string{"ini-1", "ini-2"}, got.Profiles[0].CompletedLessons)
}

func TestLoadWithoutActiveAccount(t *testing.T) {
	st := openTestStore(t)

	got, err := st.LoadActiveAccountState()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSaveOverwrites(t *testing.T) {
	st := openTestStore(t)
	email := "ana@ejemplo.com"

	first := sampleState(email)
	require.NoError(t, st.SaveAccountState(email, first))

	second := sampleState(email)
	second.Profiles[0].XP = 700
	second.Profiles[0].CompletedLessons = append(second.Profiles[0].CompletedLessons, "ini-3")
	require.NoError(t, st.SaveAccountState(email, second))

	got, err := st.AccountState(email)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 700, got.Profiles[0].XP)
	assert.Len(t, got.Profiles[0].CompletedLessons, 3)
}

func TestAccountsAreIsolated(t *testing.T) {
	st := openTestStore(t)

	ana := sampleState("ana@ejemplo.com")
	luis := sampleState("luis@ejemplo.com")
	luis.Account.Name = "Luis Pérez"
	luis.Profiles[0].XP = 0

	require.NoError(t, st.SaveAccountState("ana@ejemplo.com", ana))
	require.NoError(t, st.SaveAccountState("luis@ejemplo.com", luis))

	got, err := st.AccountState("luis@ejemplo.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Luis Pérez", got.Account.Name)
	assert.Equal(t, 0, got.Profiles[0].XP)
}

func TestSetActiveAccountClear(t *testing.T) {
	st := openTestStore(t)
	email := "ana@ejemplo.com"

	require.NoError(t, st.SaveAccountState(email, sampleState(email)))
	require.NoError(t, st.SetActiveAccount(email))
	require.NoError(t, st.SetActiveAccount(""))

	got, err := st.LoadActiveAccountState()
	require.NoError(t, err)
	assert.Nil(t, got, "clearing the pointer must yield a cold start")

	// The snapshot itself survives the pointer clear.
	kept, err := st.AccountState(email)
	require.NoError(t, err)
	assert.NotNil(t, kept)
}

func TestAccountExists(t *testing.T) {
	st := openTestStore(t)
	email := "ana@ejemplo.com"

	exists, err := st.AccountExists(email)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, st.SaveAccountState(email, sampleState(email)))

	exists, err = st.AccountExists(email)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCorruptSnapshotTreatedAsAbsent(t *testing.T) {
	st := openTestStore(t)
	email := "ana@ejemplo.com"

	_, err := st.DB().Exec(
		`INSERT INTO account_states (email, state) VALUES (?, ?)`,
		email, "{not json",
	)
	require.NoError(t, err)

	got, err := st.AccountState(email)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDanglingActivePointer(t *testing.T) {
	st := openTestStore(t)

	require.NoError(t, st.SetActiveAccount("gone@ejemplo.com"))

	got, err := st.LoadActiveAccountState()
	require.NoError(t, err)
	assert.Nil(t, got)
}
