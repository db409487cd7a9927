package reader

import (
	"fmt"

	"github.com/segmentio/parquet-go"
)

// FieldInfo describes one leaf column of a parquet file and how it loads.
type FieldInfo struct {
	Name         string `json:"name"`
	PhysicalType string `json:"physical_type"`
	LogicalType  string `json:"logical_type,omitempty"`
	Kind         string `json:"kind"`
	Optional     bool   `json:"optional"`
	Repeated     bool   `json:"repeated"`
	Loadable     bool   `json:"loadable"`
}

// Describe lists the leaf columns of the parquet file at path.
//
// Nested fields use dot notation (e.g., "address.street") and are never
// loadable. Kind is the Value kind a loadable column becomes.
func Describe(path string) ([]FieldInfo, error) {
	r, err := NewReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	var infos []FieldInfo
	for _, field := range r.Schema().Fields() {
		infos = append(infos, describeField(field, "", false)...)
	}
	return infos, nil
}

// describeField walks field, tracking whether any parent is repeated
func describeField(field parquet.Field, prefix string, parentRepeated bool) []FieldInfo {
	name := field.Name()
	if prefix != "" {
		name = prefix + "." + name
	}
	repeated := parentRepeated || field.Repeated()

	if !field.Leaf() {
		var infos []FieldInfo
		for _, child := range field.Fields() {
			infos = append(infos, describeField(child, name, repeated)...)
		}
		return infos
	}

	info := FieldInfo{
		Name:         name,
		PhysicalType: physicalType(field),
		Optional:     field.Optional(),
		Repeated:     repeated,
		Kind:         "unsupported",
	}
	if lt := field.Type().LogicalType(); lt != nil {
		info.LogicalType = lt.String()
	}
	if kind, ok := valueKind(field.Type().Kind()); ok && prefix == "" && !repeated {
		info.Kind = kind.String()
		info.Loadable = true
	}
	return []FieldInfo{info}
}

// physicalType returns the physical type name of a parquet field
func physicalType(field parquet.Field) string {
	if field.Type() == nil || !field.Leaf() {
		return "GROUP"
	}

	switch kind := field.Type().Kind(); kind {
	case parquet.Boolean:
		return "BOOLEAN"
	case parquet.Int32:
		return "INT32"
	case parquet.Int64:
		return "INT64"
	case parquet.Int96:
		return "INT96"
	case parquet.Float:
		return "FLOAT"
	case parquet.Double:
		return "DOUBLE"
	case parquet.ByteArray:
		return "BYTE_ARRAY"
	case parquet.FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", kind)
	}
}
