package domain

// TransferResult is the state of both products after a stock transfer.
type TransferResult struct {
	Source             Product
	Destination        Product
	DestinationCreated bool
}
