package headline

import (
	"fmt"
	"math/rand"
	"sync"
)

var photoSubjects = []string{
	"Diverse team high-fiving in modern office",
	"Smiling businesswoman looking at laptop",
	"Happy employees celebrating around conference table",
	"Professional shaking hands in bright lobby",
	"Team laughing during casual meeting",
	"Excited startup founders toasting success",
	"Cheerful customer service representative",
	"Joyful team building exercise outdoors",
	"Optimistic executives reviewing growth charts",
	"Enthusiastic interns on first day",
}

var photoSettings = []string{
	"with natural lighting",
	"in contemporary workspace",
	"with city skyline background",
	"in glass-walled meeting room",
	"at rooftop party",
	"in open-plan office",
	"with lens flare effect",
	"shot from low angle",
}

var photoMoods = []string{
	"expressing authentic joy",
	"showing genuine excitement",
	"radiating confidence",
	"demonstrating synergy",
	"embodying success",
	"projecting optimism",
}

// StockPhotos composes placeholder photo captions and image URLs. The caption
// has no dependency on the headline; the pairing is purely cosmetic.
type StockPhotos struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewStockPhotos(rng *rand.Rand) *StockPhotos {
	return &StockPhotos{rng: rng}
}

// Describe always succeeds and always matches
// "Stock Photo #<id>: <subject> <setting>, <mood>".
func (s *StockPhotos) Describe() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("Stock Photo #%d: %s %s, %s",
		s.rng.Intn(99999),
		photoSubjects[s.rng.Intn(len(photoSubjects))],
		photoSettings[s.rng.Intn(len(photoSettings))],
		photoMoods[s.rng.Intn(len(photoMoods))],
	)
}

// ImageURL returns a placeholder image against the public Lorem Picsum
// endpoint, randomized so consecutive predictions get distinct photos.
func (s *StockPhotos) ImageURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("https://picsum.photos/800/600?random=%d", s.rng.Intn(1000))
}
