package services

import (
	"math"
	"sort"

	"github.com/DanielaMVG19/sloteats/models"
)

type RestaurantRank struct {
	Restaurant string `json:"restaurant"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

type RankingView struct {
	TopRestaurants  []RestaurantRank `json:"top_restaurants"`
	ColdRestaurants []RestaurantRank `json:"cold_restaurants"`
}

const (
	topRankLimit      = 5
	coldTailLimit     = 3
	coldFixedPct      = 5
	coldFloorPct      = 10
	coldPickFromKnown = 2
)

// Rank mengelompokkan reservasi per restoran dan menghasilkan view ranking
// yang sudah dinormalisasi. Read-only, dihitung ulang setiap request
// (reservasi sering berubah, jangan dicache).
//
// Tie-break: restoran dengan count sama mempertahankan urutan kemunculan
// pertamanya di daftar reservasi (sort stabil, tanpa kunci sekunder).
func Rank(reservations []models.Reservation, knownRestaurants []string) RankingView {
	counts := make(map[string]int)
	groups := make([]RestaurantRank, 0)
	for _, r := range reservations {
		if _, seen := counts[r.RestaurantName]; !seen {
			groups = append(groups, RestaurantRank{Restaurant: r.RestaurantName})
		}
		counts[r.RestaurantName]++
	}
	for i := range groups {
		groups[i].Count = counts[groups[i].Restaurant]
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Count > groups[j].Count
	})

	// maxCount minimal 1 supaya tidak dibagi nol saat belum ada reservasi
	maxCount := 1
	if len(groups) > 0 && groups[0].Count > maxCount {
		maxCount = groups[0].Count
	}

	top := make([]RestaurantRank, 0, topRankLimit)
	for _, g := range groups {
		if len(top) == topRankLimit {
			break
		}
		g.Percentage = scalePct(g.Count, maxCount)
		top = append(top, g)
	}

	cold := make([]RestaurantRank, 0)
	for _, name := range knownRestaurants {
		if _, ok := counts[name]; !ok {
			cold = append(cold, RestaurantRank{Restaurant: name, Percentage: coldFixedPct})
		}
	}
	if len(cold) == 0 && len(groups) > 0 {
		// Semua restoran punya reservasi: tampilkan 2 group dengan count
		// terendah, persentasenya diberi lantai 10% supaya display tidak
		// terlihat kosong.
		lowest := make([]RestaurantRank, len(groups))
		copy(lowest, groups)
		sort.SliceStable(lowest, func(i, j int) bool {
			return lowest[i].Count < lowest[j].Count
		})
		for _, g := range lowest {
			if len(cold) == coldPickFromKnown {
				break
			}
			pct := scalePct(g.Count, maxCount)
			if pct < coldFloorPct {
				pct = coldFloorPct
			}
			g.Percentage = pct
			cold = append(cold, g)
		}
	}
	if len(cold) > coldTailLimit {
		cold = cold[:coldTailLimit]
	}

	return RankingView{TopRestaurants: top, ColdRestaurants: cold}
}

func scalePct(count, maxCount int) int {
	return int(math.Round(float64(count) / float64(maxCount) * 100))
}
