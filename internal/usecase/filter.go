package usecase

import "github.com/cosmos-odyssey/route-offer-service/internal/domain"

// FilterByCarrier sets the Visible flag of every offer in place.
// CarrierAll shows every offer; any other value shows only offers of that
// carrier. The result depends only on carrier, never on an earlier filter.
func FilterByCarrier(offers []domain.Offer, carrier string) {
	for i := range offers {
		offers[i].Visible = carrier == domain.CarrierAll || offers[i].Carrier == carrier
	}
}
