package service

import (
	"context"

	"github.com/reusemart/consignment-service/internal/domain"
	"github.com/reusemart/consignment-service/internal/dto"
	"github.com/reusemart/consignment-service/internal/repository"
	"github.com/shopspring/decimal"
)

type TransaksiServiceImpl struct {
	repo repository.TransaksiRepository
}

func CreateTransaksiService(repo repository.TransaksiRepository) TransaksiService {
	return &TransaksiServiceImpl{repo: repo}
}

func (s *TransaksiServiceImpl) GetTransaksiByPenitip(ctx context.Context, idPenitip int64) (resp []dto.TransaksiPenitipResponse, err error) {
	rows, err := s.repo.GetTransaksiRowsByPenitip(ctx, idPenitip)
	if err != nil {
		return
	}

	return GroupTransaksiRows(rows), nil
}

type barangKey struct {
	nama  string
	harga string
}

// GroupTransaksiRows folds joined rows into one record per id_transaksi, in
// first-seen order. Each distinct (nama_barang, harga_barang) pair is listed
// once and its price counted once in total_harga.
func GroupTransaksiRows(rows []domain.TransaksiPenitipRow) []dto.TransaksiPenitipResponse {
	result := make([]dto.TransaksiPenitipResponse, 0)
	index := make(map[int64]int)
	seen := make(map[int64]map[barangKey]struct{})

	for _, row := range rows {
		i, ok := index[row.IDTransaksi]
		if !ok {
			i = len(result)
			index[row.IDTransaksi] = i
			seen[row.IDTransaksi] = make(map[barangKey]struct{})
			result = append(result, dto.TransaksiPenitipResponse{
				IDTransaksi:     row.IDTransaksi,
				NoNota:          row.NoNota,
				TanggalPesan:    row.TanggalPesan,
				NamaPembeli:     row.NamaPembeli,
				StatusTransaksi: row.StatusTransaksi,
				KomisiPenitip:   row.KomisiPenitip,
				Barang:          []dto.TransaksiBarangResponse{},
				TotalHarga:      decimal.Zero,
			})
		}

		key := barangKey{nama: row.NamaBarang, harga: row.HargaBarang.String()}
		if _, dup := seen[row.IDTransaksi][key]; dup {
			continue
		}
		seen[row.IDTransaksi][key] = struct{}{}

		trx := &result[i]
		trx.Barang = append(trx.Barang, dto.TransaksiBarangResponse{
			NamaBarang:  row.NamaBarang,
			HargaBarang: row.HargaBarang,
		})
		trx.TotalHarga = trx.TotalHarga.Add(row.HargaBarang)
	}

	return result
}
