package valueobjects

import "fmt"

// Kind is the ticket kind discriminator. Share links and comments reference
// tickets through (Kind, id) pairs.
type Kind string

const (
	KindInspection   Kind = "inspection"
	KindMaintenance  Kind = "maintenance"
	KindIncident     Kind = "incident"
	KindChecklist    Kind = "checklist"
	KindServiceOrder Kind = "service_order"
)

var validKinds = map[Kind]bool{
	KindInspection:   true,
	KindMaintenance:  true,
	KindIncident:     true,
	KindChecklist:    true,
	KindServiceOrder: true,
}

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	return validKinds[k]
}

func NewKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid ticket kind: %s", s)
	}
	return k, nil
}

// AllKinds returns every kind in a stable order.
func AllKinds() []Kind {
	return []Kind{KindInspection, KindMaintenance, KindIncident, KindChecklist, KindServiceOrder}
}
