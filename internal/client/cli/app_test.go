package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkalens/wallpaper/internal/client/client"
	"github.com/mkalens/wallpaper/internal/client/models"
)

func stubInputs(t *testing.T, text string, password []byte) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return text, nil }
	getPassword = func(_ io.Writer, _ string) ([]byte, error) { return password, nil }
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

type fakeSession struct {
	unlockRet *models.AuthState
	unlockErr error

	currentRet *models.AuthState

	logoutCalled bool
}

func (f *fakeSession) Unlock(_ context.Context, password string) (*models.AuthState, error) {
	if f.unlockErr != nil {
		return nil, f.unlockErr
	}
	return f.unlockRet, nil
}

func (f *fakeSession) Current(context.Context) (*models.AuthState, error) {
	if f.currentRet != nil {
		return f.currentRet, nil
	}
	return &models.AuthState{}, nil
}

func (f *fakeSession) Logout(context.Context) error {
	f.logoutCalled = true
	return nil
}

type fakeBoard struct {
	memos []*models.Memo

	verifyErr error

	loadedWallID string
	updatedID    string
	gotPinned    *bool
	gotContent   *string
	deletedID    string
	refetched    bool
}

func (f *fakeBoard) Load(_ context.Context, wallID string) error {
	f.loadedWallID = wallID
	return nil
}

func (f *fakeBoard) Refetch(context.Context) error {
	f.refetched = true
	return nil
}

func (f *fakeBoard) Memos() []*models.Memo { return f.memos }

func (f *fakeBoard) Find(memoID string) *models.Memo {
	for _, m := range f.memos {
		if m.ID == memoID {
			return m
		}
	}
	return nil
}

func (f *fakeBoard) Add(_ context.Context, content, color, password string) (*models.Memo, error) {
	m := &models.Memo{ID: "new", Content: content, Color: color}
	f.memos = append(f.memos, m)
	return m, nil
}

func (f *fakeBoard) Verify(_ context.Context, memoID, password string) error {
	return f.verifyErr
}

func (f *fakeBoard) Update(_ context.Context, memoID, password string, content *string, color *string, isPinned *bool) (*models.Memo, error) {
	f.updatedID = memoID
	f.gotContent = content
	f.gotPinned = isPinned
	return &models.Memo{ID: memoID}, nil
}

func (f *fakeBoard) Delete(_ context.Context, memoID, password string) error {
	f.deletedID = memoID
	return nil
}

func TestUnlock_Success(t *testing.T) {
	fs := &fakeSession{unlockRet: &models.AuthState{IsAuthenticated: true, WallID: "w-1", WallName: "wall"}}
	fb := &fakeBoard{}
	a := &App{sessionService: fs, boardService: fb}

	restore := stubInputs(t, "", []byte("1234"))
	defer restore()

	require.NoError(t, a.Unlock(context.Background()))
	assert.True(t, a.isUnlocked())
	assert.Equal(t, "w-1", fb.loadedWallID)
}

func TestUnlock_WrongPassphrase(t *testing.T) {
	fs := &fakeSession{unlockErr: client.ErrUnauthorized}
	a := &App{sessionService: fs, boardService: &fakeBoard{}}

	restore := stubInputs(t, "", []byte("wrong"))
	defer restore()

	err := a.Unlock(context.Background())
	require.ErrorIs(t, err, client.ErrUnauthorized)
	assert.False(t, a.isUnlocked())
}

func TestLogout(t *testing.T) {
	fs := &fakeSession{}
	a := &App{
		sessionService: fs,
		boardService:   &fakeBoard{},
		state:          &models.AuthState{IsAuthenticated: true},
	}

	require.NoError(t, a.Logout(context.Background()))
	assert.True(t, fs.logoutCalled)
	assert.False(t, a.isUnlocked())
}

func TestPin_TogglesCurrentState(t *testing.T) {
	fb := &fakeBoard{memos: []*models.Memo{{ID: "m-1", IsPinned: false}}}
	a := &App{sessionService: &fakeSession{}, boardService: fb}

	restore := stubInputs(t, "m-1", []byte("abcd"))
	defer restore()

	a.pin(context.Background())

	assert.Equal(t, "m-1", fb.updatedID)
	require.NotNil(t, fb.gotPinned)
	assert.True(t, *fb.gotPinned)
	assert.Nil(t, fb.gotContent)
}

func TestPin_VerifyFailureSkipsMutation(t *testing.T) {
	fb := &fakeBoard{
		memos:     []*models.Memo{{ID: "m-1"}},
		verifyErr: client.ErrUnauthorized,
	}
	a := &App{sessionService: &fakeSession{}, boardService: fb}

	restore := stubInputs(t, "m-1", []byte("wrong"))
	defer restore()

	a.pin(context.Background())

	assert.Empty(t, fb.updatedID, "mutation must not run after a failed check")
}

func TestDelete_UnknownMemoSkipsPrompt(t *testing.T) {
	fb := &fakeBoard{}
	a := &App{sessionService: &fakeSession{}, boardService: fb}

	restore := stubInputs(t, "ghost", []byte("abcd"))
	defer restore()

	a.delete(context.Background())

	assert.Empty(t, fb.deletedID)
}

func TestDelete_Success(t *testing.T) {
	fb := &fakeBoard{memos: []*models.Memo{{ID: "m-1"}}}
	a := &App{sessionService: &fakeSession{}, boardService: fb}

	restore := stubInputs(t, "m-1", []byte("abcd"))
	defer restore()

	a.delete(context.Background())

	assert.Equal(t, "m-1", fb.deletedID)
}

func TestEdit_RepromptsWhileContentEmpty(t *testing.T) {
	fb := &fakeBoard{memos: []*models.Memo{{ID: "m-1"}}}
	a := &App{
		sessionService: &fakeSession{},
		boardService:   fb,
		// First attempt is blank-only lines, second carries text.
		reader: bufio.NewReader(strings.NewReader("   \n\nnew text\n\n")),
	}

	origGP, origST := getPassword, getSimpleText
	defer func() { getPassword, getSimpleText = origGP, origST }()
	getPassword = func(_ io.Writer, _ string) ([]byte, error) { return []byte("abcd"), nil }
	getSimpleText = func(r *bufio.Reader, prompt string, _ io.Writer) (string, error) {
		if strings.Contains(prompt, "memo id") {
			return "m-1", nil
		}
		return "", nil // keep current color
	}

	a.edit(context.Background())

	assert.Equal(t, "m-1", fb.updatedID)
	require.NotNil(t, fb.gotContent)
	assert.Equal(t, "new text", *fb.gotContent)
}

func TestRun_ResumesPersistedSession(t *testing.T) {
	fs := &fakeSession{currentRet: &models.AuthState{IsAuthenticated: true, WallID: "w-1", WallName: "wall"}}
	fb := &fakeBoard{}
	a := &App{sessionService: fs, boardService: fb, reader: bufio.NewReader(strings.NewReader(""))}

	// Root returns immediately on stdin EOF in tests.
	a.Run(context.Background())

	assert.Equal(t, "w-1", fb.loadedWallID)
	assert.True(t, a.isUnlocked())
}
