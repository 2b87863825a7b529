package service

import (
	"context"
	"errors"
	"mime/multipart"
	"strconv"
	"strings"
	"sync"

	"github.com/reusemart/consignment-service/internal/domain"
	"github.com/reusemart/consignment-service/internal/repository"
	pkgdto "github.com/reusemart/consignment-service/pkg/dto"
)

var errDB = errors.New("db is down")

// fakeBarangRepo stages writes made inside HandleTrx and only keeps them
// when the callback succeeds, like a database transaction would.
type fakeBarangRepo struct {
	barang      map[int64]domain.Barang
	gambar      map[int64][]domain.GambarBarang
	totalRating map[int64]int64
	rated       map[int64]bool

	failOn    string
	commits   int
	rollbacks int
}

func newFakeBarangRepo() *fakeBarangRepo {
	return &fakeBarangRepo{
		barang:      map[int64]domain.Barang{},
		gambar:      map[int64][]domain.GambarBarang{},
		totalRating: map[int64]int64{},
		rated:       map[int64]bool{},
	}
}

func (r *fakeBarangRepo) clone() *fakeBarangRepo {
	c := newFakeBarangRepo()
	c.failOn = r.failOn
	for k, v := range r.barang {
		c.barang[k] = v
	}
	for k, v := range r.gambar {
		c.gambar[k] = append([]domain.GambarBarang(nil), v...)
	}
	for k, v := range r.totalRating {
		c.totalRating[k] = v
	}
	for k, v := range r.rated {
		c.rated[k] = v
	}
	return c
}

func (r *fakeBarangRepo) HandleTrx(ctx context.Context, fn func(ctx context.Context, repo repository.BarangRepository) error) error {
	staged := r.clone()
	if err := fn(ctx, staged); err != nil {
		r.rollbacks++
		return err
	}

	r.barang, r.gambar, r.totalRating, r.rated = staged.barang, staged.gambar, staged.totalRating, staged.rated
	r.commits++
	return nil
}

func (r *fakeBarangRepo) fail(method string) error {
	if r.failOn == method {
		return errDB
	}
	return nil
}

func (r *fakeBarangRepo) GetBarangByID(ctx context.Context, id int64) (domain.Barang, error) {
	if err := r.fail("GetBarangByID"); err != nil {
		return domain.Barang{}, err
	}
	return r.barang[id], nil
}

func (r *fakeBarangRepo) GetGambarBarang(ctx context.Context, idBarang int64) ([]domain.GambarBarang, error) {
	return r.gambar[idBarang], r.fail("GetGambarBarang")
}

func (r *fakeBarangRepo) UpdateBarang(ctx context.Context, data domain.BarangUpdate) error {
	if err := r.fail("UpdateBarang"); err != nil {
		return err
	}
	b := r.barang[data.ID]
	b.NamaBarang = data.NamaBarang
	b.DeskripsiBarang = &data.DeskripsiBarang
	b.HargaBarang = data.HargaBarang
	b.BeratBarang = data.BeratBarang
	b.TanggalGaransi = data.TanggalGaransi
	b.StatusTitip = data.StatusTitip
	r.barang[data.ID] = b
	return nil
}

func (r *fakeBarangRepo) ReplaceGambarBarang(ctx context.Context, idBarang int64, srcImgs []string) error {
	if err := r.fail("ReplaceGambarBarang"); err != nil {
		return err
	}
	rows := make([]domain.GambarBarang, len(srcImgs))
	for i, src := range srcImgs {
		rows[i] = domain.GambarBarang{ID: int64(i + 1), IDBarang: idBarang, SrcImg: src}
	}
	r.gambar[idBarang] = rows
	return nil
}

func (r *fakeBarangRepo) DeleteBarang(ctx context.Context, id int64) error {
	if err := r.fail("DeleteBarang"); err != nil {
		return err
	}
	delete(r.gambar, id)
	delete(r.barang, id)
	return nil
}

func (r *fakeBarangRepo) UpdateBarangRating(ctx context.Context, id int64, rating int64) error {
	if err := r.fail("UpdateBarangRating"); err != nil {
		return err
	}
	if b, ok := r.barang[id]; ok {
		b.Rating = &rating
		r.barang[id] = b
	}
	return nil
}

func (r *fakeBarangRepo) GetBarangPenitipID(ctx context.Context, id int64) (int64, error) {
	b, ok := r.barang[id]
	if !ok || b.IDPenitip == nil {
		return 0, nil
	}
	return *b.IDPenitip, nil
}

func (r *fakeBarangRepo) AddPenitipRating(ctx context.Context, idPenitip int64, rating int64) error {
	if err := r.fail("AddPenitipRating"); err != nil {
		return err
	}
	r.totalRating[idPenitip] += rating
	return nil
}

func (r *fakeBarangRepo) MarkTransaksiRated(ctx context.Context, idBarang int64) error {
	if err := r.fail("MarkTransaksiRated"); err != nil {
		return err
	}
	r.rated[idBarang] = true
	return nil
}

type fakeStorage struct {
	saved   []string
	removed []string
}

func (s *fakeStorage) SaveImage(fh *multipart.FileHeader) (string, error) {
	if strings.HasSuffix(fh.Filename, ".txt") {
		return "", errNotImage
	}
	url := "/uploads/" + fh.Filename
	s.saved = append(s.saved, url)
	return url, nil
}

func (s *fakeStorage) Remove(url string) error {
	s.removed = append(s.removed, url)
	return nil
}

var errNotImage = errors.New("not an image")

type publishedEvent struct {
	key   string
	value string
}

type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (p *fakePublisher) Publish(ctx context.Context, key string, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{key: key, value: string(value)})
	return p.err
}

type fakePenitipRepo struct {
	penitip map[int64]domain.Penitip
	nextID  int64

	failOn    string
	rollbacks int
}

func newFakePenitipRepo() *fakePenitipRepo {
	return &fakePenitipRepo{penitip: map[int64]domain.Penitip{}, nextID: 1}
}

func (r *fakePenitipRepo) HandleTrx(ctx context.Context, fn func(ctx context.Context, repo repository.PenitipRepository) error) error {
	staged := &fakePenitipRepo{penitip: map[int64]domain.Penitip{}, nextID: r.nextID, failOn: r.failOn}
	for k, v := range r.penitip {
		staged.penitip[k] = v
	}

	if err := fn(ctx, staged); err != nil {
		r.rollbacks++
		return err
	}

	r.penitip, r.nextID = staged.penitip, staged.nextID
	return nil
}

func (r *fakePenitipRepo) GetPenitips(ctx context.Context, filter pkgdto.Filter) ([]domain.PenitipSummary, error) {
	var data []domain.PenitipSummary
	q := strings.ToLower(filter.Q)
	for _, p := range r.penitip {
		if q != "" && !strings.Contains(strings.ToLower(p.Nama), q) && !strings.Contains(strings.ToLower(p.Email), q) {
			continue
		}
		data = append(data, domain.PenitipSummary{IDPenitip: p.IDPenitip, ID: p.ID, Nama: p.Nama, Email: p.Email, BadgeLevel: p.BadgeLevel})
	}
	return data, nil
}

func (r *fakePenitipRepo) GetPenitipByID(ctx context.Context, id int64) (domain.Penitip, error) {
	return r.penitip[id], nil
}

func (r *fakePenitipRepo) PenitipExistsByEmailOrKTP(ctx context.Context, email string, noKTP string, excludeID int64) (bool, error) {
	for id, p := range r.penitip {
		if id == excludeID {
			continue
		}
		if strings.EqualFold(p.Email, email) || p.NoKTP == noKTP {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePenitipRepo) AddPenitip(ctx context.Context, data domain.Penitip) (int64, error) {
	id := r.nextID
	r.nextID++
	data.IDPenitip = id
	r.penitip[id] = data
	return id, nil
}

func (r *fakePenitipRepo) SetPenitipPublicID(ctx context.Context, id int64, publicID string) error {
	if r.failOn == "SetPenitipPublicID" {
		return errDB
	}
	p := r.penitip[id]
	p.ID = &publicID
	r.penitip[id] = p
	return nil
}

func (r *fakePenitipRepo) UpdatePenitip(ctx context.Context, data domain.PenitipUpdate) error {
	p := r.penitip[data.IDPenitip]
	p.Nama = data.Nama
	p.NoKTP = strconv.FormatInt(data.NoKTP, 10)
	p.Email = data.Email
	p.BadgeLevel = data.BadgeLevel
	r.penitip[data.IDPenitip] = p
	return nil
}

func (r *fakePenitipRepo) DeletePenitip(ctx context.Context, id int64) error {
	delete(r.penitip, id)
	return nil
}

type fakeAccountRepo struct {
	emails   map[domain.AccountTable][]string
	accounts map[string]domain.Account
	pembeli  map[int64]domain.Pembeli
	nextID   int64
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		emails:   map[domain.AccountTable][]string{},
		accounts: map[string]domain.Account{},
		pembeli:  map[int64]domain.Pembeli{},
		nextID:   100,
	}
}

func (r *fakeAccountRepo) EmailExists(ctx context.Context, table domain.AccountTable, email string) (bool, error) {
	for _, e := range r.emails[table] {
		if strings.EqualFold(e, email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAccountRepo) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	return r.accounts[strings.ToLower(email)], nil
}

func (r *fakeAccountRepo) AddPembeli(ctx context.Context, data domain.Pembeli) (int64, error) {
	id := r.nextID
	r.nextID++
	data.ID = id
	r.pembeli[id] = data
	r.emails[domain.TablePembeli] = append(r.emails[domain.TablePembeli], data.Email)
	return id, nil
}

func (r *fakeAccountRepo) GetPembeliByID(ctx context.Context, id int64) (domain.Pembeli, error) {
	return r.pembeli[id], nil
}

func (r *fakeAccountRepo) VerifyPembeli(ctx context.Context, id int64) error {
	if p, ok := r.pembeli[id]; ok {
		p.IsVerified = true
		r.pembeli[id] = p
	}
	for k, a := range r.accounts {
		if a.ID == id && a.Role == domain.RolePembeli {
			a.IsVerified = true
			r.accounts[k] = a
		}
	}
	return nil
}

type fakeMailer struct {
	to   string
	link string
	err  error
}

func (m *fakeMailer) SendVerificationEmail(ctx context.Context, to string, link string) error {
	m.to, m.link = to, link
	return m.err
}

type fakeTransaksiRepo struct {
	rows []domain.TransaksiPenitipRow
	id   int64
}

func (r *fakeTransaksiRepo) GetTransaksiRowsByPenitip(ctx context.Context, idPenitip int64) ([]domain.TransaksiPenitipRow, error) {
	r.id = idPenitip
	return r.rows, nil
}
