package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"NavidentClinic/models"
)

/*
* In-memory stores backing the service tests. They implement the same
* contracts as the Mongo repositories, minus sorting subtleties the tests
* do not depend on.
 */

type fakeUserStore struct {
	users map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}}
}

func (f *fakeUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID.Hex() == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserStore) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := f.users[username]
	return ok, nil
}

func (f *fakeUserStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) Insert(_ context.Context, u *models.User) error {
	u.ID = primitive.NewObjectID()
	copied := *u
	f.users[u.Username] = &copied
	return nil
}

func (f *fakeUserStore) Replace(_ context.Context, u *models.User) error {
	copied := *u
	f.users[u.Username] = &copied
	return nil
}

func (f *fakeUserStore) DeleteByID(_ context.Context, id string) (bool, error) {
	for username, u := range f.users {
		if u.ID.Hex() == id {
			delete(f.users, username)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) FindPage(_ context.Context, page, size int64, _, _ string) ([]models.User, int64, error) {
	all := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		all = append(all, *u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Username < all[j].Username })
	total := int64(len(all))
	start := page * size
	if start >= total {
		return []models.User{}, total, nil
	}
	end := start + size
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

func (f *fakeUserStore) FindAll(_ context.Context) ([]models.User, error) {
	all := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		all = append(all, *u)
	}
	return all, nil
}

func (f *fakeUserStore) Search(_ context.Context, query string) ([]models.User, error) {
	var matched []models.User
	for _, u := range f.users {
		if strings.Contains(strings.ToLower(u.Username+" "+u.Email+" "+u.FirstName+" "+u.LastName), strings.ToLower(query)) {
			matched = append(matched, *u)
		}
	}
	return matched, nil
}

type fakeDentistStore struct {
	mu       sync.Mutex
	dentists map[string]*models.Dentist
	writes   []string
}

func newFakeDentistStore() *fakeDentistStore {
	return &fakeDentistStore{dentists: map[string]*models.Dentist{}}
}

func (f *fakeDentistStore) FindByID(_ context.Context, id string) (*models.Dentist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.dentists[id]
	if !ok {
		return nil, nil
	}
	copied := *d
	return &copied, nil
}

func (f *fakeDentistStore) Insert(_ context.Context, d *models.Dentist) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, "insert")
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	copied := *d
	f.dentists[d.ID.Hex()] = &copied
	return nil
}

func (f *fakeDentistStore) Replace(_ context.Context, d *models.Dentist) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *d
	f.dentists[d.ID.Hex()] = &copied
	return nil
}

func (f *fakeDentistStore) DeleteByID(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.dentists[id]; !ok {
		return false, nil
	}
	delete(f.dentists, id)
	return true, nil
}

func (f *fakeDentistStore) FindPage(_ context.Context, page, size int64, _, _ string) ([]models.Dentist, int64, error) {
	all, _ := f.FindAll(context.Background())
	total := int64(len(all))
	start := page * size
	if start >= total {
		return []models.Dentist{}, total, nil
	}
	end := start + size
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

func (f *fakeDentistStore) FindAll(_ context.Context) ([]models.Dentist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]models.Dentist, 0, len(f.dentists))
	for _, d := range f.dentists {
		all = append(all, *d)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].LastName < all[j].LastName })
	return all, nil
}

func (f *fakeDentistStore) FindByChiefDentistTrue(_ context.Context) ([]models.Dentist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var chiefs []models.Dentist
	for _, d := range f.dentists {
		if d.ChiefDentist {
			chiefs = append(chiefs, *d)
		}
	}
	return chiefs, nil
}

func (f *fakeDentistStore) FindByActiveTrue(_ context.Context) ([]models.Dentist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var active []models.Dentist
	for _, d := range f.dentists {
		if d.Active {
			active = append(active, *d)
		}
	}
	return active, nil
}

func (f *fakeDentistStore) FindBySpecialization(_ context.Context, specialization string) ([]models.Dentist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []models.Dentist
	for _, d := range f.dentists {
		for _, s := range d.Specializations {
			if strings.EqualFold(s, specialization) {
				matched = append(matched, *d)
				break
			}
		}
	}
	return matched, nil
}

func (f *fakeDentistStore) ExistsByLicenseNumber(_ context.Context, licenseNumber string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.dentists {
		if d.LicenseNumber == licenseNumber {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeDentistStore) ClearChiefExcept(_ context.Context, keepID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, "clearChief")
	for _, d := range f.dentists {
		if d.ChiefDentist && d.ID != keepID {
			d.ChiefDentist = false
			d.UpdatedAt = time.Now()
		}
	}
	return nil
}

func (f *fakeDentistStore) Search(_ context.Context, query string) ([]models.Dentist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []models.Dentist
	for _, d := range f.dentists {
		if strings.Contains(strings.ToLower(d.FirstName+" "+d.LastName+" "+d.LicenseNumber), strings.ToLower(query)) {
			matched = append(matched, *d)
		}
	}
	return matched, nil
}

type fakePatientLookup struct {
	patients map[string]*models.Patient
}

func newFakePatientLookup(patients ...*models.Patient) *fakePatientLookup {
	f := &fakePatientLookup{patients: map[string]*models.Patient{}}
	for _, p := range patients {
		if p.ID.IsZero() {
			p.ID = primitive.NewObjectID()
		}
		f.patients[p.ID.Hex()] = p
	}
	return f
}

func (f *fakePatientLookup) FindByID(_ context.Context, id string) (*models.Patient, error) {
	p, ok := f.patients[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

type fakeDentistLookup struct {
	dentists map[string]*models.Dentist
}

func newFakeDentistLookup(dentists ...*models.Dentist) *fakeDentistLookup {
	f := &fakeDentistLookup{dentists: map[string]*models.Dentist{}}
	for _, d := range dentists {
		if d.ID.IsZero() {
			d.ID = primitive.NewObjectID()
		}
		f.dentists[d.ID.Hex()] = d
	}
	return f
}

func (f *fakeDentistLookup) FindByID(_ context.Context, id string) (*models.Dentist, error) {
	d, ok := f.dentists[id]
	if !ok {
		return nil, nil
	}
	return d, nil
}

type fakeBillStore struct {
	bills map[string]*models.Bill
}

func newFakeBillStore() *fakeBillStore {
	return &fakeBillStore{bills: map[string]*models.Bill{}}
}

func (f *fakeBillStore) FindByID(_ context.Context, id string) (*models.Bill, error) {
	b, ok := f.bills[id]
	if !ok {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBillStore) Insert(_ context.Context, b *models.Bill) error {
	b.ID = primitive.NewObjectID()
	copied := *b
	f.bills[b.ID.Hex()] = &copied
	return nil
}

func (f *fakeBillStore) Replace(_ context.Context, b *models.Bill) error {
	copied := *b
	f.bills[b.ID.Hex()] = &copied
	return nil
}

func (f *fakeBillStore) DeleteByID(_ context.Context, id string) (bool, error) {
	if _, ok := f.bills[id]; !ok {
		return false, nil
	}
	delete(f.bills, id)
	return true, nil
}

func (f *fakeBillStore) FindPage(_ context.Context, page, size int64, _, _ string) ([]models.Bill, int64, error) {
	all := make([]models.Bill, 0, len(f.bills))
	for _, b := range f.bills {
		all = append(all, *b)
	}
	return all, int64(len(all)), nil
}

func (f *fakeBillStore) FindByPatientID(_ context.Context, patientID string) ([]models.Bill, error) {
	var matched []models.Bill
	for _, b := range f.bills {
		if b.PatientID == patientID {
			matched = append(matched, *b)
		}
	}
	return matched, nil
}

func (f *fakeBillStore) FindByDentistID(_ context.Context, dentistID string) ([]models.Bill, error) {
	var matched []models.Bill
	for _, b := range f.bills {
		if b.DentistID == dentistID {
			matched = append(matched, *b)
		}
	}
	return matched, nil
}

func (f *fakeBillStore) FindByPaymentStatus(_ context.Context, status string) ([]models.Bill, error) {
	var matched []models.Bill
	for _, b := range f.bills {
		if b.PaymentStatus == status {
			matched = append(matched, *b)
		}
	}
	return matched, nil
}

func (f *fakeBillStore) FindOverdue(_ context.Context, today string) ([]models.Bill, error) {
	var matched []models.Bill
	for _, b := range f.bills {
		if b.Overdue(today) {
			matched = append(matched, *b)
		}
	}
	return matched, nil
}

func (f *fakeBillStore) Search(_ context.Context, query string) ([]models.Bill, error) {
	var matched []models.Bill
	for _, b := range f.bills {
		if strings.Contains(strings.ToLower(b.BillID+" "+b.PatientName), strings.ToLower(query)) {
			matched = append(matched, *b)
		}
	}
	return matched, nil
}

type fakeFinanceStore struct {
	txns map[string]*models.ClinicFinance
}

func newFakeFinanceStore() *fakeFinanceStore {
	return &fakeFinanceStore{txns: map[string]*models.ClinicFinance{}}
}

func (f *fakeFinanceStore) FindByID(_ context.Context, id string) (*models.ClinicFinance, error) {
	t, ok := f.txns[id]
	if !ok {
		return nil, nil
	}
	copied := *t
	return &copied, nil
}

func (f *fakeFinanceStore) Insert(_ context.Context, t *models.ClinicFinance) error {
	t.ID = primitive.NewObjectID()
	copied := *t
	f.txns[t.ID.Hex()] = &copied
	return nil
}

func (f *fakeFinanceStore) InsertMany(ctx context.Context, txns []models.ClinicFinance) error {
	for i := range txns {
		if err := f.Insert(ctx, &txns[i]); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeFinanceStore) Replace(_ context.Context, t *models.ClinicFinance) error {
	copied := *t
	f.txns[t.ID.Hex()] = &copied
	return nil
}

func (f *fakeFinanceStore) DeleteByID(_ context.Context, id string) (bool, error) {
	if _, ok := f.txns[id]; !ok {
		return false, nil
	}
	delete(f.txns, id)
	return true, nil
}

func (f *fakeFinanceStore) FindPage(_ context.Context, category, txnType string, page, size int64, _, _ string) ([]models.ClinicFinance, int64, error) {
	var all []models.ClinicFinance
	for _, t := range f.txns {
		if category != "" && t.Category != category {
			continue
		}
		if txnType != "" && t.Type != txnType {
			continue
		}
		all = append(all, *t)
	}
	return all, int64(len(all)), nil
}

func (f *fakeFinanceStore) FindByDateRange(_ context.Context, start, end string) ([]models.ClinicFinance, error) {
	var matched []models.ClinicFinance
	for _, t := range f.txns {
		if t.TransactionDate >= start && t.TransactionDate <= end {
			matched = append(matched, *t)
		}
	}
	return matched, nil
}

func (f *fakeFinanceStore) FindByCategory(_ context.Context, category string) ([]models.ClinicFinance, error) {
	var matched []models.ClinicFinance
	for _, t := range f.txns {
		if t.Category == category {
			matched = append(matched, *t)
		}
	}
	return matched, nil
}

func (f *fakeFinanceStore) FindByType(_ context.Context, txnType string) ([]models.ClinicFinance, error) {
	var matched []models.ClinicFinance
	for _, t := range f.txns {
		if t.Type == txnType {
			matched = append(matched, *t)
		}
	}
	return matched, nil
}

func (f *fakeFinanceStore) Search(_ context.Context, query string) ([]models.ClinicFinance, error) {
	var matched []models.ClinicFinance
	for _, t := range f.txns {
		if strings.Contains(strings.ToLower(t.Description+" "+t.VendorName), strings.ToLower(query)) {
			matched = append(matched, *t)
		}
	}
	return matched, nil
}

func (f *fakeFinanceStore) Distinct(_ context.Context, field string) ([]string, error) {
	seen := map[string]bool{}
	for _, t := range f.txns {
		var v string
		switch field {
		case "category":
			v = t.Category
		case "type":
			v = t.Type
		case "vendorName":
			v = t.VendorName
		}
		if v != "" {
			seen[v] = true
		}
	}
	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values, nil
}

type fakeInsuranceStore struct {
	insurances map[string]*models.Insurance
}

func newFakeInsuranceStore() *fakeInsuranceStore {
	return &fakeInsuranceStore{insurances: map[string]*models.Insurance{}}
}

func (f *fakeInsuranceStore) FindByID(_ context.Context, id string) (*models.Insurance, error) {
	ins, ok := f.insurances[id]
	if !ok {
		return nil, nil
	}
	copied := *ins
	return &copied, nil
}

func (f *fakeInsuranceStore) Insert(_ context.Context, ins *models.Insurance) error {
	ins.ID = primitive.NewObjectID()
	copied := *ins
	f.insurances[ins.ID.Hex()] = &copied
	return nil
}

func (f *fakeInsuranceStore) Replace(_ context.Context, ins *models.Insurance) error {
	copied := *ins
	f.insurances[ins.ID.Hex()] = &copied
	return nil
}

func (f *fakeInsuranceStore) DeleteByID(_ context.Context, id string) (bool, error) {
	if _, ok := f.insurances[id]; !ok {
		return false, nil
	}
	delete(f.insurances, id)
	return true, nil
}

func (f *fakeInsuranceStore) FindPage(_ context.Context, page, size int64, _, _ string) ([]models.Insurance, int64, error) {
	var all []models.Insurance
	for _, ins := range f.insurances {
		all = append(all, *ins)
	}
	return all, int64(len(all)), nil
}

func (f *fakeInsuranceStore) FindByPatientID(_ context.Context, patientID string) ([]models.Insurance, error) {
	var matched []models.Insurance
	for _, ins := range f.insurances {
		if ins.PatientID == patientID {
			matched = append(matched, *ins)
		}
	}
	return matched, nil
}

func (f *fakeInsuranceStore) FindActive(_ context.Context) ([]models.Insurance, error) {
	var matched []models.Insurance
	for _, ins := range f.insurances {
		if ins.Active {
			matched = append(matched, *ins)
		}
	}
	return matched, nil
}

func (f *fakeInsuranceStore) FindExpiring(_ context.Context, from, to string) ([]models.Insurance, error) {
	var matched []models.Insurance
	for _, ins := range f.insurances {
		if ins.Active && ins.PolicyEndDate >= from && ins.PolicyEndDate <= to {
			matched = append(matched, *ins)
		}
	}
	return matched, nil
}

func (f *fakeInsuranceStore) Search(_ context.Context, query string) ([]models.Insurance, error) {
	var matched []models.Insurance
	for _, ins := range f.insurances {
		if strings.Contains(strings.ToLower(ins.AgencyName+" "+ins.PolicyNumber), strings.ToLower(query)) {
			matched = append(matched, *ins)
		}
	}
	return matched, nil
}
