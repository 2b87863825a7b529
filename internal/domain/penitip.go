package domain

const BadgeNovice = "novice"

type Penitip struct {
	IDPenitip      int64   `db:"id_penitip"`
	ID             *string `db:"id"`
	Nama           string  `db:"nama"`
	NoKTP          string  `db:"no_ktp"`
	NoTelepon      string  `db:"no_telepon"`
	Email          string  `db:"email"`
	HashedPassword string  `db:"password"`
	BadgeLevel     string  `db:"badge_level"`
	TotalRating    int64   `db:"total_rating"`
}

// PenitipSummary is a penitip row joined with the number of barang it owns.
type PenitipSummary struct {
	IDPenitip   int64   `db:"id_penitip"`
	ID          *string `db:"id"`
	Nama        string  `db:"nama"`
	NoKTP       string  `db:"no_ktp"`
	NoTelepon   string  `db:"no_telepon"`
	Email       string  `db:"email"`
	BadgeLevel  string  `db:"badge_level"`
	TotalBarang int64   `db:"total_barang"`
}

type PenitipUpdate struct {
	IDPenitip  int64  `db:"id_penitip"`
	Nama       string `db:"nama"`
	NoKTP      int64  `db:"no_ktp"`
	NoTelepon  int64  `db:"no_telepon"`
	Email      string `db:"email"`
	BadgeLevel string `db:"badge_level"`
}
