package handler

import (
	"simops-backend/internal/model"

	"gorm.io/gorm"
)

// Fake repository in-memory untuk test handler, tanpa MySQL.

type fakeAkunRepo struct {
	akun        []model.Akun
	createCalls int
}

func (f *fakeAkunRepo) Create(a model.Akun) error {
	f.createCalls++
	f.akun = append(f.akun, a)
	return nil
}

func (f *fakeAkunRepo) GetByUsername(username string) (*model.Akun, error) {
	for i := range f.akun {
		if f.akun[i].Username == username {
			a := f.akun[i]
			return &a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAkunRepo) GetPending() ([]model.Akun, error) {
	list := []model.Akun{}
	for _, a := range f.akun {
		if a.StatusAkun == model.StatusAkunPending {
			list = append(list, a)
		}
	}
	return list, nil
}

func (f *fakeAkunRepo) Update(a *model.Akun) error {
	for i := range f.akun {
		if f.akun[i].Username == a.Username {
			f.akun[i] = *a
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakePekerjaanRepo struct {
	pekerjaan []model.Pekerjaan
}

func (f *fakePekerjaanRepo) Create(p model.Pekerjaan) error {
	f.pekerjaan = append(f.pekerjaan, p)
	return nil
}

func (f *fakePekerjaanRepo) GetAll() ([]model.Pekerjaan, error) {
	return append([]model.Pekerjaan{}, f.pekerjaan...), nil
}

func (f *fakePekerjaanRepo) GetByIDPekerjaan(id string) (*model.Pekerjaan, error) {
	for i := range f.pekerjaan {
		if f.pekerjaan[i].IDPekerjaan == id {
			p := f.pekerjaan[i]
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePekerjaanRepo) Update(p *model.Pekerjaan) error {
	for i := range f.pekerjaan {
		if f.pekerjaan[i].IDPekerjaan == p.IDPekerjaan {
			f.pekerjaan[i] = *p
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeRisikoRepo struct {
	risiko []model.Risiko
}

func (f *fakeRisikoRepo) CreateMany(rows []model.Risiko) error {
	f.risiko = append(f.risiko, rows...)
	return nil
}

func (f *fakeRisikoRepo) GetAll() ([]model.Risiko, error) {
	return append([]model.Risiko{}, f.risiko...), nil
}

func (f *fakeRisikoRepo) GetByIDPekerjaan(id string) ([]model.Risiko, error) {
	list := []model.Risiko{}
	for _, r := range f.risiko {
		if r.IDPekerjaan == id {
			list = append(list, r)
		}
	}
	return list, nil
}

type fakeDokumenRepo struct {
	dokumen []model.Dokumen
}

func (f *fakeDokumenRepo) Create(d model.Dokumen) error {
	f.dokumen = append(f.dokumen, d)
	return nil
}

func (f *fakeDokumenRepo) GetAll() ([]model.Dokumen, error) {
	return append([]model.Dokumen{}, f.dokumen...), nil
}

type fakeSimopsRepo struct {
	simops []model.Simops
}

func (f *fakeSimopsRepo) Create(s model.Simops) error {
	f.simops = append(f.simops, s)
	return nil
}

func (f *fakeSimopsRepo) GetByAreaTanggal(area, tanggal string) (*model.Simops, error) {
	for i := range f.simops {
		if f.simops[i].Area == area && f.simops[i].Tanggal == tanggal {
			s := f.simops[i]
			return &s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSimopsRepo) GetByIDSimops(id string) (*model.Simops, error) {
	for i := range f.simops {
		if f.simops[i].IDSimops == id {
			s := f.simops[i]
			return &s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSimopsRepo) Update(s *model.Simops) error {
	for i := range f.simops {
		if f.simops[i].IDSimops == s.IDSimops {
			f.simops[i] = *s
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeSimopsRepo) GetAll() ([]model.Simops, error) {
	return append([]model.Simops{}, f.simops...), nil
}
