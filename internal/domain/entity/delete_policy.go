package entity

// DeletePolicy qué ocurre con las filas hijas al borrar la fila padre.
type DeletePolicy string

const (
	DeleteRestrict DeletePolicy = "RESTRICT" // el borrado del padre falla con conflicto
	DeleteCascade  DeletePolicy = "CASCADE"  // las filas hijas se borran con el padre
	DeleteSetNull  DeletePolicy = "SET NULL" // la FK de las hijas queda en NULL
)

// Relationship relación padre→hija con su política de borrado.
type Relationship struct {
	Parent string
	Child  string
	Column string
	Policy DeletePolicy
}

// Relationships políticas de borrado declaradas para cada FK del esquema.
// migrations/00001_schema.sql debe reflejar exactamente esta tabla.
var Relationships = []Relationship{
	{Parent: "product_categories", Child: "products", Column: "category_id", Policy: DeleteSetNull},
	{Parent: "customers", Child: "orders", Column: "customer_id", Policy: DeleteRestrict},
	{Parent: "staff", Child: "orders", Column: "created_by", Policy: DeleteSetNull},
	{Parent: "orders", Child: "order_items", Column: "order_id", Policy: DeleteCascade},
	{Parent: "products", Child: "order_items", Column: "product_id", Policy: DeleteRestrict},
	{Parent: "suppliers", Child: "procurements", Column: "supplier_id", Policy: DeleteRestrict},
	{Parent: "staff", Child: "procurements", Column: "recorded_by", Policy: DeleteSetNull},
	{Parent: "procurements", Child: "procurement_items", Column: "procurement_id", Policy: DeleteCascade},
	{Parent: "products", Child: "procurement_items", Column: "product_id", Policy: DeleteRestrict},
	{Parent: "products", Child: "inventory_movements", Column: "product_id", Policy: DeleteRestrict},
	{Parent: "orders", Child: "inventory_movements", Column: "order_id", Policy: DeleteRestrict},
	{Parent: "procurements", Child: "inventory_movements", Column: "procurement_id", Policy: DeleteRestrict},
	{Parent: "staff", Child: "inventory_movements", Column: "recorded_by", Policy: DeleteSetNull},
	{Parent: "orders", Child: "deliveries", Column: "order_id", Policy: DeleteRestrict},
	{Parent: "staff", Child: "deliveries", Column: "delivered_by", Policy: DeleteSetNull},
	{Parent: "orders", Child: "payments", Column: "order_id", Policy: DeleteRestrict},
}

// PolicyFor devuelve la política declarada para child.column; ok=false si no existe.
func PolicyFor(child, column string) (DeletePolicy, bool) {
	for _, r := range Relationships {
		if r.Child == child && r.Column == column {
			return r.Policy, true
		}
	}
	return "", false
}
