package entity

// Branch sucursal a la que pertenece un empleado.
type Branch string

const (
	BranchTuwaiq Branch = "فرع طويق"
	BranchHazm   Branch = "فرع الحزم"
	BranchOkaz   Branch = "فرع عكاظ"
)

// Branches sucursales conocidas, en el orden en que se muestran.
var Branches = []Branch{BranchTuwaiq, BranchHazm, BranchOkaz}

// Valid indica si la sucursal es una de las conocidas.
func (b Branch) Valid() bool {
	for _, known := range Branches {
		if b == known {
			return true
		}
	}
	return false
}

// Employee representa a un cajero que registra ventas con tarjeta.
// PasswordHash guarda la credencial tal como la envía el cliente.
type Employee struct {
	ID           string
	Name         string
	Username     string
	PasswordHash string
	Branch       Branch
}
