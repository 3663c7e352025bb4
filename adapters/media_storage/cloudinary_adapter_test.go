package media_storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/personal-portfolio/internal/config"
	"github.com/khoahotran/personal-portfolio/pkg/logger"
)

func TestPublicID(t *testing.T) {
	assert.Equal(t, "profile-photos/profile-1-ab", publicID("profile-photos/profile-1-ab.png"))
	assert.Equal(t, "profile-photos/profile-1-ab", publicID("profile-photos/profile-1-ab"))
}

func TestNewCloudinaryAdapter_RequiresCloudName(t *testing.T) {
	_, err := NewCloudinaryAdapter(config.Config{}, logger.NewNopLogger())
	assert.Error(t, err)
}

func TestPublicURLKeepsExtension(t *testing.T) {
	var cfg config.Config
	cfg.Cloudinary.CloudName = "demo"
	cfg.Cloudinary.ApiKey = "key"
	cfg.Cloudinary.ApiSecret = "secret"

	store, err := NewCloudinaryAdapter(cfg, logger.NewNopLogger())
	require.NoError(t, err)

	url, err := store.PublicURL("profile-photos/profile-1760517000000-1a2b3c4d.png")
	require.NoError(t, err)
	assert.Contains(t, url, "https://")
	assert.Contains(t, url, "/demo/image/upload/")
	assert.Contains(t, url, "profile-photos/profile-1760517000000-1a2b3c4d.png")

	thumb, err := store.TransformedURL("profile-photos/profile-1760517000000-1a2b3c4d.png", "c_fill,g_auto,w_400,h_400")
	require.NoError(t, err)
	assert.Contains(t, thumb, "c_fill,g_auto,w_400,h_400")
}
