package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kiattisakchaochata/backendTopaward/internal/app/repository"
	"github.com/Kiattisakchaochata/backendTopaward/internal/db"
)

func setupVideoServiceTest(t *testing.T) VideoService {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})
	return NewVideoService(repository.NewVideoRepository(testDB))
}

func strPtr(s string) *string { return &s }

func TestVideoService_CreateValidation(t *testing.T) {
	svc := setupVideoServiceTest(t)

	tests := []struct {
		name    string
		input   VideoInput
		wantErr error
	}{
		{
			name:    "missing title",
			input:   VideoInput{YoutubeURL: strPtr("https://www.youtube.com/watch?v=abc")},
			wantErr: ErrVideoTitle,
		},
		{
			name:    "no links",
			input:   VideoInput{Title: "Clip"},
			wantErr: ErrVideoLinkRequired,
		},
		{
			name:    "bad youtube host",
			input:   VideoInput{Title: "Clip", YoutubeURL: strPtr("https://vimeo.com/123")},
			wantErr: ErrVideoInvalidURL,
		},
		{
			name:    "tiktok without video path",
			input:   VideoInput{Title: "Clip", TiktokURL: strPtr("https://www.tiktok.com/@someone")},
			wantErr: ErrVideoInvalidURL,
		},
		{
			name:  "valid youtube",
			input: VideoInput{Title: "Clip", YoutubeURL: strPtr("https://youtu.be/abc123")},
		},
		{
			name:  "valid tiktok",
			input: VideoInput{Title: "Clip", TiktokURL: strPtr("https://www.tiktok.com/@someone/video/7123456789")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			video, err := svc.CreateVideo(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, video.IsActive)
		})
	}
}

func TestVideoService_OrderDefaultsToMaxPlusOne(t *testing.T) {
	svc := setupVideoServiceTest(t)

	first, err := svc.CreateVideo(VideoInput{
		Title: "First", YoutubeURL: strPtr("https://www.youtube.com/watch?v=a"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, first.OrderNumber)

	second, err := svc.CreateVideo(VideoInput{
		Title: "Second", YoutubeURL: strPtr("https://www.youtube.com/watch?v=b"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, second.OrderNumber)
}

func TestVideoService_ActiveWindow(t *testing.T) {
	svc := setupVideoServiceTest(t)

	now := time.Now()
	past := now.AddDate(0, 0, -7)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	_, err := svc.CreateVideo(VideoInput{
		Title: "Always", YoutubeURL: strPtr("https://www.youtube.com/watch?v=a"),
	})
	require.NoError(t, err)

	_, err = svc.CreateVideo(VideoInput{
		Title: "Ended", YoutubeURL: strPtr("https://www.youtube.com/watch?v=b"),
		StartDate: &past, EndDate: &yesterday,
	})
	require.NoError(t, err)

	_, err = svc.CreateVideo(VideoInput{
		Title: "Upcoming", YoutubeURL: strPtr("https://www.youtube.com/watch?v=c"),
		StartDate: &tomorrow,
	})
	require.NoError(t, err)

	active, err := svc.GetActiveVideos(now)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Always", active[0].Title)
}

func TestVideoService_UpdateKeepsLinkValidation(t *testing.T) {
	svc := setupVideoServiceTest(t)

	video, err := svc.CreateVideo(VideoInput{
		Title: "Clip", YoutubeURL: strPtr("https://www.youtube.com/watch?v=a"),
	})
	require.NoError(t, err)

	// Clearing the only link is rejected.
	_, err = svc.UpdateVideo(video.ID, VideoInput{YoutubeURL: strPtr("")})
	assert.ErrorIs(t, err, ErrVideoLinkRequired)

	// Swapping to a tiktok link works.
	updated, err := svc.UpdateVideo(video.ID, VideoInput{
		YoutubeURL: strPtr(""),
		TiktokURL:  strPtr("https://www.tiktok.com/@x/video/99"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.TiktokURL)
}
