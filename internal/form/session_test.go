package form

//go:generate mockgen -source=session.go -destination=mocks/mocks.go -package=mocks Saver,ReferenceLoader,Presenter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	mdwerror "github.com/msto63/sellerdesk/foundation/core/error"
	"github.com/msto63/sellerdesk/foundation/core/validation"
	"github.com/msto63/sellerdesk/internal/domain"
	"github.com/msto63/sellerdesk/internal/form/metrics"
	"github.com/msto63/sellerdesk/internal/form/mocks"
	"github.com/msto63/sellerdesk/internal/refdata"
)

type SessionSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	ctx         context.Context
	deptSaver   *mocks.MockSaver[domain.Department]
	sellerSaver *mocks.MockSaver[domain.Seller]
	loader      *mocks.MockReferenceLoader
	presenter   *mocks.MockPresenter
	metrics     *metrics.Metrics
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func (s *SessionSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.deptSaver = mocks.NewMockSaver[domain.Department](s.ctrl)
	s.sellerSaver = mocks.NewMockSaver[domain.Seller](s.ctrl)
	s.loader = mocks.NewMockReferenceLoader(s.ctrl)
	s.presenter = mocks.NewMockPresenter(s.ctrl)
	s.metrics = metrics.NewWithRegisterer(prometheus.NewRegistry())
}

func (s *SessionSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SessionSuite) departmentSession() *Session[domain.Department, DepartmentFields] {
	return NewSession("department", Binder[domain.Department, DepartmentFields](DepartmentBinder{}),
		WithSaver[domain.Department, DepartmentFields](s.deptSaver),
		WithPresenter[domain.Department, DepartmentFields](s.presenter),
		WithMetrics[domain.Department, DepartmentFields](s.metrics),
	)
}

func (s *SessionSuite) sellerSession() *Session[domain.Seller, SellerFields] {
	return NewSession("seller", Binder[domain.Seller, SellerFields](testSellerBinder()),
		WithSaver[domain.Seller, SellerFields](s.sellerSaver),
		WithLoader[domain.Seller, SellerFields](s.loader),
		WithPresenter[domain.Seller, SellerFields](s.presenter),
		WithMetrics[domain.Seller, SellerFields](s.metrics),
	)
}

func (s *SessionSuite) assertPrecondition(fn func()) {
	defer func() {
		r := recover()
		s.Require().NotNil(r, "expected a panic")
		err, ok := r.(error)
		s.Require().True(ok, "panic value must be an error")
		s.True(mdwerror.IsPrecondition(err))
	}()
	fn()
}

func storedSeller() domain.Seller {
	return domain.Seller{
		ID:         domain.IntID(4),
		Name:       "Ana",
		Email:      "ana@example.com",
		BirthDate:  time.Date(1990, time.April, 15, 0, 0, 0, 0, time.UTC),
		BaseSalary: decimal.RequireFromString("3000.50"),
	}.WithDepartment(computers)
}

// =============================================================================
// Preconditions
// =============================================================================

func (s *SessionSuite) TestPreconditions() {
	s.Run("populate without saver", func() {
		sess := NewSession("department", Binder[domain.Department, DepartmentFields](DepartmentBinder{}))
		s.assertPrecondition(func() { sess.Populate(domain.Department{}) })
		s.Equal(StateIdle, sess.State())
	})

	s.Run("load reference data without loader", func() {
		sess := s.departmentSession()
		s.assertPrecondition(func() { _ = sess.LoadReferenceData(s.ctx) })
	})

	s.Run("submit without entity", func() {
		sess := s.departmentSession()
		s.assertPrecondition(func() { sess.Submit(s.ctx) })
	})

	s.Run("submit after close", func() {
		sess := s.departmentSession()
		sess.Populate(domain.Department{Name: "Books"})
		sess.Cancel()
		s.assertPrecondition(func() { sess.Submit(s.ctx) })
	})
}

// =============================================================================
// Validation failures
// =============================================================================

func (s *SessionSuite) TestSubmit_EmptyDepartmentName() {
	sess := s.departmentSession()
	sess.Populate(domain.Department{})

	var shown validation.ErrorSet
	s.presenter.EXPECT().ShowFieldErrors(gomock.Any()).Do(func(errs validation.ErrorSet) {
		shown = errs
	}).Times(1)

	notified := 0
	sess.Subscribe(func() { notified++ })

	out := sess.Submit(s.ctx)

	s.Equal(OutcomeInvalid, out.Kind)
	s.Nil(out.Fault)
	s.Equal(map[string]string{FieldName: "Field can't be empty"}, out.Errors.Map())
	s.Equal(out.Errors.Map(), shown.Map())
	s.Equal(out.Errors.Map(), sess.Errors().Map())
	s.Equal(StateErrorDisplayed, sess.State())
	s.Equal(0, notified)
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.SubmitOutcomes.WithLabelValues("department", metrics.OutcomeInvalid)))
}

func (s *SessionSuite) TestSubmit_SellerPartiallyInvalid() {
	sess := s.sellerSession()
	sess.Populate(domain.Seller{})
	sess.SetFields(SellerFields{Name: "Ana", Email: "", BirthDate: "", BaseSalary: "abc"})

	s.presenter.EXPECT().ShowFieldErrors(gomock.Any()).Times(1)

	out := sess.Submit(s.ctx)

	s.Equal(OutcomeInvalid, out.Kind)
	s.True(out.Errors.Has(FieldEmail))
	s.True(out.Errors.Has(FieldBirthDate))
	s.True(out.Errors.Has(FieldBaseSalary))
	s.False(out.Errors.Has(FieldName))
	s.Equal(3, out.Errors.Len())
}

func (s *SessionSuite) TestSubmit_BlankRequiredFieldsNeverSaved() {
	blanks := []string{"", " ", "\t", "  \n "}
	for _, blank := range blanks {
		sess := s.sellerSession()
		sess.Populate(storedSeller())

		f := sess.Fields()
		f.Name = blank
		f.Email = blank
		sess.SetFields(f)

		s.presenter.EXPECT().ShowFieldErrors(gomock.Any()).Times(1)
		out := sess.Submit(s.ctx)

		s.Equal(OutcomeInvalid, out.Kind)
		s.Equal([]string{FieldName, FieldEmail}, out.Errors.Fields())
	}
}

func (s *SessionSuite) TestSubmit_CorrectionAfterValidationFailure() {
	sess := s.departmentSession()
	sess.Populate(domain.Department{})

	s.presenter.EXPECT().ShowFieldErrors(gomock.Any()).Times(1)
	s.Equal(OutcomeInvalid, sess.Submit(s.ctx).Kind)

	sess.SetFields(DepartmentFields{Name: "Books"})
	s.Equal(StateErrorDisplayed, sess.State())

	s.deptSaver.EXPECT().SaveOrUpdate(gomock.Any(), domain.Department{Name: "Books"}).
		Return(domain.Department{ID: domain.IntID(1), Name: "Books"}, nil)

	out := sess.Submit(s.ctx)
	s.Equal(OutcomeSaved, out.Kind)
	s.True(sess.Errors().IsEmpty())
}

// =============================================================================
// Persistence failures
// =============================================================================

func (s *SessionSuite) TestSubmit_PersistenceFailure() {
	original := domain.Department{ID: domain.IntID(7), Name: "Books"}
	sess := s.departmentSession()
	sess.Populate(original)

	// A validation failure first, so the error set has something to clear
	sess.SetFields(DepartmentFields{ID: "7", Name: ""})
	s.presenter.EXPECT().ShowFieldErrors(gomock.Any()).Times(1)
	sess.Submit(s.ctx)
	s.False(sess.Errors().IsEmpty())

	sess.SetFields(DepartmentFields{ID: "7", Name: "Records"})
	s.deptSaver.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).
		Return(domain.Department{}, errors.New("connection refused"))
	s.presenter.EXPECT().ShowAlert(AlertTitle, "connection refused").Times(1)

	notified := 0
	sess.Subscribe(func() { notified++ })

	out := sess.Submit(s.ctx)

	s.Equal(OutcomeFailed, out.Kind)
	s.True(out.Errors.IsEmpty())
	s.Require().Error(out.Fault)
	s.True(mdwerror.IsPersistence(out.Fault))
	s.True(sess.Errors().IsEmpty())
	s.Equal(StateErrorDisplayed, sess.State())
	s.Equal(0, notified)

	entity, ok := sess.Entity()
	s.True(ok)
	s.Equal(original, entity)

	// Manual retry stays possible
	s.deptSaver.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).
		Return(domain.Department{ID: domain.IntID(7), Name: "Records"}, nil)
	s.Equal(OutcomeSaved, sess.Submit(s.ctx).Kind)
	s.Equal(1, notified)
}

func (s *SessionSuite) TestSubmit_PersistenceFaultCodeKept() {
	sess := s.departmentSession()
	sess.Populate(domain.Department{ID: domain.IntID(3), Name: "Books"})

	cause := mdwerror.New("department 3 not found").WithCode(mdwerror.CodeNotFound)
	s.deptSaver.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(domain.Department{}, cause)
	s.presenter.EXPECT().ShowAlert(AlertTitle, "department 3 not found")

	out := sess.Submit(s.ctx)
	s.True(mdwerror.HasCode(out.Fault, mdwerror.CodeNotFound))
}

// =============================================================================
// Success
// =============================================================================

func (s *SessionSuite) TestSubmit_RoundTrip() {
	stored := storedSeller()
	sess := s.sellerSession()
	s.loader.EXPECT().Load(gomock.Any()).Return(refdata.NewList(books, computers), nil)
	s.Require().NoError(sess.LoadReferenceData(s.ctx))
	sess.Populate(stored)

	var saved domain.Seller
	s.sellerSaver.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e domain.Seller) (domain.Seller, error) {
			saved = e
			return e, nil
		})

	out := sess.Submit(s.ctx)

	s.Equal(OutcomeSaved, out.Kind)
	s.True(stored.Equal(saved), "saved %s, want %s", saved, stored)
	s.Equal(StateClosed, sess.State())
}

func (s *SessionSuite) TestSubmit_DefaultsToFirstDepartment() {
	sess := s.sellerSession()
	s.loader.EXPECT().Load(gomock.Any()).Return(refdata.NewList(books, computers), nil)
	s.Require().NoError(sess.LoadReferenceData(s.ctx))
	sess.Populate(domain.Seller{})

	f := validSellerFields()
	f.Department = nil
	sess.SetFields(f)

	s.sellerSaver.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e domain.Seller) (domain.Seller, error) {
			e.ID = domain.IntID(11)
			return e, nil
		})

	out := sess.Submit(s.ctx)
	s.Require().Equal(OutcomeSaved, out.Kind)

	entity, _ := sess.Entity()
	s.Require().NotNil(entity.Department)
	s.True(books.Equal(*entity.Department))
	s.Equal(11, *entity.ID)
	s.Equal("11", sess.Fields().ID)
}

func (s *SessionSuite) TestSubmit_NotifiesOnceInOrder() {
	sess := s.departmentSession()
	sess.Populate(domain.Department{Name: "Books"})

	var calls []string
	sess.Subscribe(func() {
		calls = append(calls, "first")
		s.NotEqual(StateClosed, sess.State(), "observers run before the session closes")
	})
	sess.Subscribe(func() { calls = append(calls, "second") })

	s.deptSaver.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).
		Return(domain.Department{ID: domain.IntID(1), Name: "Books"}, nil)

	out := sess.Submit(s.ctx)

	s.Equal(OutcomeSaved, out.Kind)
	s.Equal([]string{"first", "second"}, calls)
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.SubmitOutcomes.WithLabelValues("department", metrics.OutcomeSaved)))
	s.Equal(1, testutil.CollectAndCount(s.metrics.SaveDuration))
}

// =============================================================================
// Reference data
// =============================================================================

func (s *SessionSuite) TestLoadReferenceData_Failure() {
	sess := s.sellerSession()

	s.loader.EXPECT().Load(gomock.Any()).Return(refdata.NewList(books), nil)
	s.Require().NoError(sess.LoadReferenceData(s.ctx))

	fault := mdwerror.New("db down").WithCode(mdwerror.CodeConnectionFailed)
	s.loader.EXPECT().Load(gomock.Any()).Return(refdata.List{}, fault)

	err := sess.LoadReferenceData(s.ctx)
	s.Require().Error(err)
	s.True(mdwerror.IsPersistence(err))
	s.Equal(1, sess.ReferenceData().Len(), "previous list is kept")
}

func (s *SessionSuite) TestLoadReferenceData_FreshEachTime() {
	sess := s.sellerSession()
	s.loader.EXPECT().Load(gomock.Any()).Return(refdata.NewList(books), nil)
	s.loader.EXPECT().Load(gomock.Any()).Return(refdata.NewList(books, computers), nil)

	s.Require().NoError(sess.LoadReferenceData(s.ctx))
	s.Equal(1, sess.ReferenceData().Len())
	s.Require().NoError(sess.LoadReferenceData(s.ctx))
	s.Equal(2, sess.ReferenceData().Len())
}

// =============================================================================
// Cancel
// =============================================================================

func (s *SessionSuite) TestCancel() {
	states := map[string]func(*Session[domain.Department, DepartmentFields]){
		"idle": func(*Session[domain.Department, DepartmentFields]) {},
		"editing": func(sess *Session[domain.Department, DepartmentFields]) {
			sess.Populate(domain.Department{Name: "Books"})
			sess.SetFields(DepartmentFields{Name: "Changed"})
		},
		"error displayed": func(sess *Session[domain.Department, DepartmentFields]) {
			sess.Populate(domain.Department{})
			s.presenter.EXPECT().ShowFieldErrors(gomock.Any())
			sess.Submit(s.ctx)
		},
	}

	for name, setup := range states {
		s.Run(name, func() {
			sess := s.departmentSession()
			notified := 0
			sess.Subscribe(func() { notified++ })

			setup(sess)
			sess.Cancel()

			s.Equal(StateClosed, sess.State())
			s.Equal(0, notified)
		})
	}
}

func (s *SessionSuite) TestSetFields_IgnoredWhenClosed() {
	sess := s.departmentSession()
	sess.Populate(domain.Department{Name: "Books"})
	sess.Cancel()

	sess.SetFields(DepartmentFields{Name: "Changed"})
	s.Equal("Books", sess.Fields().Name)
}

func (s *SessionSuite) TestUnsubscribe() {
	sess := s.departmentSession()
	sess.Populate(domain.Department{Name: "Books"})

	notified := 0
	sub := sess.Subscribe(func() { notified++ })
	s.True(sess.Unsubscribe(sub))

	s.deptSaver.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(domain.Department{Name: "Books"}, nil)
	sess.Submit(s.ctx)
	s.Equal(0, notified)
}

func TestStateAndOutcomeStrings(t *testing.T) {
	cases := map[string]string{
		StateIdle.String():           "idle",
		StateEditing.String():        "editing",
		StateSubmitting.String():     "submitting",
		StateErrorDisplayed.String(): "error_displayed",
		StateClosed.String():         "closed",
		OutcomeSaved.String():        "saved",
		OutcomeInvalid.String():      "invalid",
		OutcomeFailed.String():       "failed",
	}
	for got, want := range cases {
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}
