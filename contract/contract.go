//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"math/rand"
	"team-lab/balancer"
	"team-lab/domain"
)

// IPartitioner builds balanced teams. *balancer.Engine is the production implementation.
type IPartitioner interface {
	Partition(req balancer.Request, rng *rand.Rand) (domain.PartitionResult, error)
}

var _ IPartitioner = (*balancer.Engine)(nil)
