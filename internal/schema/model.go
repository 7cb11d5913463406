package schema

// ScalarType is the storage class inferred for a CSV column.
type ScalarType int

const (
	TypeNull ScalarType = iota // every sampled cell was a null token
	TypeBoolean
	TypeInteger
	TypeFloat
	TypeString
)

func (t ScalarType) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBoolean:
		return "boolean"
	case TypeInteger:
		return "integer"
	case TypeFloat:
		return "float"
	default:
		return "string"
	}
}

type Column struct {
	Name     string
	Type     ScalarType
	Nullable bool
	Meaning  string // 컬럼명 분석으로 파악된 의미 (예: "phone", "email")
}

// Names returns the column names in order.
func Names(cols []*Column) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names
}
