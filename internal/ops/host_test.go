package ops

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hpungsan/notepad/internal/db"
	"github.com/hpungsan/notepad/internal/screen"
)

func TestHost_RecordsNavigation(t *testing.T) {
	database := setupDB(t)
	host := &Host{}

	s, session, err := OpenScreen(context.Background(), database, host, host, nil, screen.Params{})
	require.NoError(t, err)
	defer session.Close()

	require.Len(t, host.Options.HeaderRight, 1)
	require.Equal(t, screen.SaveIcon, host.Options.HeaderRight[0].Icon)

	s.SetTitle("via header")
	host.Options.HeaderRight[0].OnPress()
	require.Equal(t, 1, host.Backs)
	require.Equal(t, screen.StatusSaved, s.Status())
}

func TestHost_PendingAlert(t *testing.T) {
	database := setupDB(t)
	id := seedNote(t, database, "Old", "X")
	n, err := db.GetByID(context.Background(), database, id)
	require.NoError(t, err)

	host := &Host{}
	_, ok := host.Pending()
	require.False(t, ok)

	s, session, err := OpenScreen(context.Background(), database, host, host, nil, screen.Params{Note: n})
	require.NoError(t, err)
	defer session.Close()

	require.NoError(t, s.RequestDelete())
	a, ok := host.Pending()
	require.True(t, ok)
	require.Equal(t, screen.DeleteAlertTitle, a.Title)

	// Nothing happens until a button is pressed.
	require.Equal(t, 1, countNotes(t, database))
	require.True(t, a.Press(screen.ConfirmDelete))
	require.Equal(t, 0, countNotes(t, database))
	require.Equal(t, 1, host.Backs)
}

func TestOpenScreen_SessionEndsWithOwner(t *testing.T) {
	database := setupDB(t)
	owner, cancel := context.WithCancel(context.Background())
	host := &Host{}

	_, session, err := OpenScreen(owner, database, host, host, nil, screen.Params{})
	require.NoError(t, err)
	require.Equal(t, 1, database.Stats().InUse)

	cancel()
	require.Eventually(t, session.Closed, time.Second, 5*time.Millisecond)
}
