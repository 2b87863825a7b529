package dto

type KafkaMessage struct {
	EventType string      `json:"event_type"`
	Data      interface{} `json:"data"`
}

type BarangRatedEvent struct {
	IDBarang  int64 `json:"id_barang"`
	IDPenitip int64 `json:"id_penitip"`
	Rating    int64 `json:"rating"`
}

type PembeliRegisteredEvent struct {
	IDPembeli int64  `json:"id_pembeli"`
	Email     string `json:"email"`
}
