// internal/domain/ingredient/valuation.go
package ingredient

// WeightedAverageCost merges a newly received lot into existing stock.
// The result is total value on hand divided by total quantity on hand.
// When the merged quantity is zero the lot's own price is returned.
func WeightedAverageCost(currentStock, currentCost, quantity, lotCost float64) float64 {
	totalQuantity := currentStock + quantity
	if totalQuantity <= 0 {
		return lotCost
	}
	currentValue := currentStock * currentCost
	lotValue := quantity * lotCost
	return (currentValue + lotValue) / totalQuantity
}
