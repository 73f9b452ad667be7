package knn

import (
	"fmt"

	"github.com/AeronFaust/CISC-7700X-HW-2/internal/predictor"
)

// VoteFn picks the winning label for a non-empty neighbor list.
type VoteFn func(src predictor.Source, nn []predictor.Neighbor) string

func VoteFuncFor(m predictor.VoteMode) (VoteFn, error) {
	switch m {
	case predictor.VoteModeLabel:
		return VoteByLabel, nil
	case predictor.VoteModeFirstMatch:
		return VoteByFirstMatch, nil
	default:
		return nil, fmt.Errorf("unknown vote mode: %s", m)
	}
}

// VoteByLabel counts one vote per neighbor for its label. On equal counts
// the label met first in neighbor order, the nearer one, wins.
func VoteByLabel(_ predictor.Source, nn []predictor.Neighbor) string {
	var (
		order  []string
		counts = map[string]int{}
	)
	for _, n := range nn {
		if _, ok := counts[n.Label]; !ok {
			order = append(order, n.Label)
		}
		counts[n.Label]++
	}

	var (
		maxVotes int
		winner   string
	)
	for _, label := range order {
		if counts[label] > maxVotes {
			maxVotes = counts[label]
			winner = label
		}
	}
	return winner
}

// VoteByFirstMatch credits each neighbor's vote to the first stored
// observation with the same label, then scans the store in order keeping the
// first strictly greatest count. On equal counts the label stored first wins.
func VoteByFirstMatch(src predictor.Source, nn []predictor.Neighbor) string {
	labelVotes := make([]int, src.Len())
	for _, n := range nn {
		for j := 0; j < src.Len(); j++ {
			if n.Label == src.At(j).Label {
				labelVotes[j]++
				break
			}
		}
	}

	var (
		maxVotes int
		winner   string
	)
	for i := range labelVotes {
		if labelVotes[i] > maxVotes {
			maxVotes = labelVotes[i]
			winner = src.At(i).Label
		}
	}
	return winner
}
