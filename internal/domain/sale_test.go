package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannelForSubID(t *testing.T) {
	subID := "sub123"
	empty := ""

	tests := []struct {
		name     string
		subID    *string
		expected Channel
	}{
		{"sub_id preenchido é rede social", &subID, ChannelSocial},
		{"sub_id nil é Shopee Vídeo", nil, ChannelVideo},
		{"sub_id vazio é Shopee Vídeo", &empty, ChannelVideo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ChannelForSubID(tt.subID))
		})
	}
}

func TestChannelOrigin(t *testing.T) {
	assert.Equal(t, "Redes Sociais", ChannelSocial.Origin())
	assert.Equal(t, "Shopee Vídeo", ChannelVideo.Origin())
}

func TestParseProductFilter(t *testing.T) {
	assert.Equal(t, FilterSocial, ParseProductFilter("social"))
	assert.Equal(t, FilterVideo, ParseProductFilter("video"))
	assert.Equal(t, FilterAll, ParseProductFilter("all"))
	assert.Equal(t, FilterAll, ParseProductFilter(""))
	assert.Equal(t, FilterAll, ParseProductFilter("outro"))
}
