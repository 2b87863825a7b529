package dto

type PenitipResponse struct {
	IDPenitip   int64   `json:"id_penitip"`
	ID          *string `json:"id"`
	Nama        string  `json:"nama"`
	NoKTP       string  `json:"no_ktp"`
	NoTelepon   string  `json:"no_telepon"`
	Email       string  `json:"email"`
	BadgeLevel  string  `json:"badge_level"`
	TotalBarang int64   `json:"total_barang"`
}

type PenitipListResponse struct {
	Penitip []PenitipResponse `json:"penitip"`
}

type PenitipCreatedResponse struct {
	ID string `json:"id"`
}
