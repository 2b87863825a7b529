package dto

type PenitipRequest struct {
	Nama      string         `json:"nama"`
	NoKTP     FlexibleString `json:"no_ktp"`
	NoTelepon FlexibleString `json:"no_telepon"`
	Email     string         `json:"email"`
	Password  string         `json:"password"`
}

type PenitipUpdateRequest struct {
	IDPenitip  int64          `json:"id_penitip"`
	Nama       string         `json:"nama"`
	NoKTP      FlexibleString `json:"no_ktp"`
	NoTelepon  FlexibleString `json:"no_telepon"`
	Email      string         `json:"email"`
	BadgeLevel string         `json:"badge_level"`
}

type DeletePenitipRequest struct {
	IDPenitip int64 `json:"id_penitip"`
}
