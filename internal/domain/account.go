package domain

const (
	RolePenitip    = "Penitip"
	RolePembeli    = "Pembeli"
	RoleOrganisasi = "Organisasi"
	RoleCS         = "CS"
)

// AccountTable names a table whose email column takes part in cross-table uniqueness.
type AccountTable string

const (
	TablePegawai    AccountTable = "pegawai"
	TablePembeli    AccountTable = "pembeli"
	TableOrganisasi AccountTable = "organisasi"
	TablePenitip    AccountTable = "penitip"
)

type Pembeli struct {
	ID             int64  `db:"id_pembeli"`
	Nama           string `db:"nama"`
	NoTelepon      string `db:"no_telepon"`
	Email          string `db:"email"`
	HashedPassword string `db:"password"`
	PoinLoyalitas  int64  `db:"poin_loyalitas"`
	IsVerified     bool   `db:"is_verified"`
}

// Account is a login-capable row from any of the four account tables.
type Account struct {
	ID             int64  `db:"id"`
	Email          string `db:"email"`
	HashedPassword string `db:"password"`
	Role           string `db:"role"`
	IsVerified     bool   `db:"is_verified"`
}
