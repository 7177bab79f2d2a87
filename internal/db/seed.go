package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"ads-board/internal/core/port"
)

var (
	seedItems  = []string{"Bicycle", "Sofa", "Laptop", "Guitar", "Winter tyres", "Desk lamp", "Road map"}
	seedStates = []string{"like new", "lightly used", "needs repair", "boxed"}
)

// Seed inserts count demo ads through svc so owners are hashed exactly as
// for real requests.
func Seed(ctx context.Context, svc port.AdUseCase, count int) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := 1; i <= count; i++ {
		item := seedItems[r.Intn(len(seedItems))]
		state := seedStates[r.Intn(len(seedStates))]
		_, err := svc.CreateAd(ctx, port.CreateAdInput{
			Name:        fmt.Sprintf("%s #%d", item, i),
			Description: fmt.Sprintf("%s, %s. Pick-up only.", item, state),
			Owner:       fmt.Sprintf("seller-%d@example.com", r.Intn(20)+1),
		})
		if err != nil {
			return fmt.Errorf("seed ad %d: %w", i, err)
		}
	}
	return nil
}
