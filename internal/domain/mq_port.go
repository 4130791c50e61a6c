package domain

import "context"

type Message struct {
	Key   []byte
	Value []byte
}

// ContractEvent is emitted after a contract operation commits.
type ContractEvent struct {
	ContractID     string `json:"contract_id"`
	ContractNumber string `json:"contract_number"`
	StoreID        string `json:"store_id"`
	Operation      string `json:"operation"`
	OldStatus      string `json:"old_status,omitempty"`
	NewStatus      string `json:"new_status"`
	TransactionID  string `json:"transaction_id,omitempty"`
	Amount         string `json:"amount,omitempty"`
	OccurredAt     string `json:"occurred_at"`
}

type ContractEventPublisher interface {
	PublishContractEvent(ctx context.Context, event ContractEvent) error
}
