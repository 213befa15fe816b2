package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/zawiya/internal/domain"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Len(t, c.Programs(), 4)
	assert.Len(t, c.Schedule(), 6)
	assert.Equal(t, 1250, c.Statistics().Students)
	assert.Equal(t, 223, c.Statistics().Years)
	assert.NotEmpty(t, c.FAQ())
	assert.Contains(t, c.States(), "الأغواط")
	assert.NotEmpty(t, c.ContactSubjects())
	assert.Len(t, c.Structure().Teachers, 3)

	label, ok := c.ProgramLabel("children")
	require.True(t, ok)
	assert.Equal(t, "برنامج حفظ القرآن للأطفال", label)

	_, ok = c.Program("nope")
	assert.False(t, ok)
}

func TestUpdateMeetLink(t *testing.T) {
	c := Default()

	got, err := c.UpdateMeetLink(3, "https://meet.google.com/new-link")
	require.NoError(t, err)
	assert.Equal(t, "https://meet.google.com/new-link", got.MeetLink)
	assert.Equal(t, "https://meet.google.com/new-link", c.Schedule()[2].MeetLink)

	_, err = c.UpdateMeetLink(99, "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSchedule_ReturnsCopy(t *testing.T) {
	c := Default()
	s := c.Schedule()
	s[0].MeetLink = "mutated"
	assert.NotEqual(t, "mutated", c.Schedule()[0].MeetLink)
}

const custom = `
programs:
  - id: solo
    name: برنامج واحد
schedule:
  - id: 1
    title: حصة
    program: solo
statistics:
  students: 7
`

func TestLoad_File(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/zawiya/catalog.yaml", []byte(custom), 0o644))

	c, err := Load(fs, "/etc/zawiya/catalog.yaml")
	require.NoError(t, err)
	assert.Len(t, c.Programs(), 1)
	assert.Equal(t, 7, c.Statistics().Students)
}

func TestLoad_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := Load(fs, "/missing.yaml")
	assert.Error(t, err)

	require.NoError(t, afero.WriteFile(fs, "/empty.yaml", []byte("faq: []"), 0o644))
	_, err = Load(fs, "/empty.yaml")
	assert.ErrorContains(t, err, "no programs")
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, defaultYAML, 0o644))

	c, err := Load(afero.NewOsFs(), path)
	require.NoError(t, err)
	require.Len(t, c.Programs(), 4)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, c.Watch(ctx))

	require.NoError(t, os.WriteFile(path, []byte(custom), 0o644))
	assert.Eventually(t, func() bool { return len(c.Programs()) == 1 }, 3*time.Second, 20*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("programs: ["), 0o644))
	time.Sleep(100 * time.Millisecond)
	assert.Len(t, c.Programs(), 1, "invalid document keeps the previous catalog")
}
