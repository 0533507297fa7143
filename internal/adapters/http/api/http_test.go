package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/okian/varsity/internal/adapters/http/api"
	service "github.com/okian/varsity/internal/app"
	"github.com/okian/varsity/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func newMux(t *testing.T) (*http.ServeMux, *service.Service) {
	t.Helper()

	svc := service.New()
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("start service: %v", err)
	}
	t.Cleanup(svc.Stop)

	server := api.NewServer(svc, svc)
	mux := http.NewServeMux()
	server.Register(context.Background(), mux)
	return mux, svc
}

func do(mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestServerRegister(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		mux, _ := newMux(t)

		Convey("Then the health endpoint serves the metrics exposition", func() {
			w := do(mux, "GET", "/healthz", "")
			So(w.Code, ShouldEqual, http.StatusOK)
		})

		Convey("Then the stats endpoint is accessible", func() {
			w := do(mux, "GET", "/stats", "")
			So(w.Code, ShouldEqual, http.StatusOK)

			var stats map[string]interface{}
			So(json.Unmarshal(w.Body.Bytes(), &stats), ShouldBeNil)
			So(stats["started"], ShouldEqual, true)
		})

		Convey("Then the activity feed starts empty", func() {
			w := do(mux, "GET", "/activity", "")
			So(w.Code, ShouldEqual, http.StatusOK)
		})
	})
}

func TestAthleteEndpoints(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		mux, _ := newMux(t)

		Convey("When listing athletes", func() {
			w := do(mux, "GET", "/athletes", "")

			Convey("Then the seed roster comes back", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var athletes []model.Athlete
				So(json.Unmarshal(w.Body.Bytes(), &athletes), ShouldBeNil)
				So(athletes, ShouldHaveLength, 6)
			})
		})

		Convey("When fetching one athlete", func() {
			w := do(mux, "GET", "/athletes/a1", "")

			Convey("Then the profile comes back", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var a model.Athlete
				So(json.Unmarshal(w.Body.Bytes(), &a), ShouldBeNil)
				So(a.Name, ShouldEqual, "Marcus Reed")
			})
		})

		Convey("When the athlete does not exist", func() {
			w := do(mux, "GET", "/athletes/nobody", "")
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("When posting a workout", func() {
			w := do(mux, "POST", "/athletes/a1/workouts", `{"type":"Sprints","duration_minutes":45}`)

			Convey("Then it is created unverified", func() {
				So(w.Code, ShouldEqual, http.StatusCreated)

				var workout model.Workout
				So(json.Unmarshal(w.Body.Bytes(), &workout), ShouldBeNil)
				So(workout.Verified, ShouldBeFalse)
				So(workout.ID, ShouldNotBeEmpty)
			})

			Convey("Then it heads the effective list", func() {
				list := do(mux, "GET", "/athletes/a1/workouts", "")
				So(list.Code, ShouldEqual, http.StatusOK)

				var workouts []model.Workout
				So(json.Unmarshal(list.Body.Bytes(), &workouts), ShouldBeNil)
				So(workouts, ShouldHaveLength, 4)
				So(workouts[0].Type, ShouldEqual, "Sprints")
			})
		})

		Convey("When posting an invalid workout", func() {
			w := do(mux, "POST", "/athletes/a1/workouts", `{"type":"","duration_minutes":0}`)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When posting garbage", func() {
			w := do(mux, "POST", "/athletes/a1/workouts", `{not json`)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When fetching readiness", func() {
			w := do(mux, "GET", "/athletes/a1/readiness", "")

			Convey("Then the derived scoring view comes back", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var r struct {
					RetentionScore int    `json:"retention_score"`
					RetentionLabel string `json:"retention_label"`
				}
				So(json.Unmarshal(w.Body.Bytes(), &r), ShouldBeNil)
				So(r.RetentionScore, ShouldBeBetweenOrEqual, 0, 100)
				So(r.RetentionLabel, ShouldNotBeEmpty)
			})
		})
	})
}

func TestReviewEndpoints(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		mux, _ := newMux(t)

		Convey("When fetching a trainer's board", func() {
			w := do(mux, "GET", "/review/t1", "")

			Convey("Then the pending queue comes back", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var board struct {
					Queue []struct {
						AthleteID string        `json:"athlete_id"`
						Workout   model.Workout `json:"workout"`
					} `json:"queue"`
				}
				So(json.Unmarshal(w.Body.Bytes(), &board), ShouldBeNil)
				So(board.Queue, ShouldNotBeEmpty)
			})
		})

		Convey("When deciding a workout", func() {
			w := do(mux, "POST", "/review/t1", `{"workout_id":"w-a1-2","approved":true}`)

			Convey("Then the decision is recorded", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var resp struct {
					Decision string `json:"decision"`
					Changed  bool   `json:"changed"`
				}
				So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
				So(resp.Decision, ShouldEqual, "verified")
				So(resp.Changed, ShouldBeTrue)
			})

			Convey("Then a repeat decision does not flip it", func() {
				again := do(mux, "POST", "/review/t1", `{"workout_id":"w-a1-2","approved":false}`)
				So(again.Code, ShouldEqual, http.StatusOK)

				var resp struct {
					Decision string `json:"decision"`
					Changed  bool   `json:"changed"`
				}
				So(json.Unmarshal(again.Body.Bytes(), &resp), ShouldBeNil)
				So(resp.Decision, ShouldEqual, "verified")
				So(resp.Changed, ShouldBeFalse)
			})
		})

		Convey("When the workout belongs to another trainer's athlete", func() {
			w := do(mux, "POST", "/review/t1", `{"workout_id":"w-a2-2","approved":true}`)
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("When the trainer is unknown", func() {
			w := do(mux, "GET", "/review/t9", "")
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("When the body misses the workout id", func() {
			w := do(mux, "POST", "/review/t1", `{"approved":true}`)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestDiscoverEndpoint(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		mux, _ := newMux(t)

		Convey("When filtering for high-score quarterbacks", func() {
			w := do(mux, "GET", "/discover?position=QB&min_score=90", "")

			Convey("Then only the score-92 QB survives", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var athletes []model.Athlete
				So(json.Unmarshal(w.Body.Bytes(), &athletes), ShouldBeNil)
				So(athletes, ShouldHaveLength, 1)
				So(athletes[0].ID, ShouldEqual, "a1")
			})
		})

		Convey("When sorting by a stat", func() {
			w := do(mux, "GET", "/discover?sort=stat&stat=forty_yard", "")
			So(w.Code, ShouldEqual, http.StatusOK)
		})

		Convey("When the sort key is unknown", func() {
			w := do(mux, "GET", "/discover?sort=height", "")
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When min_score is not a number", func() {
			w := do(mux, "GET", "/discover?min_score=lots", "")
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestScoutEndpoints(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		mux, _ := newMux(t)

		Convey("When reading a fresh watchlist", func() {
			w := do(mux, "GET", "/watchlist/r1", "")

			Convey("Then the seed default applies", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var list []string
				So(json.Unmarshal(w.Body.Bytes(), &list), ShouldBeNil)
				So(list, ShouldResemble, []string{"a1", "a3"})
			})
		})

		Convey("When toggling an athlete", func() {
			w := do(mux, "POST", "/watchlist/r1", `{"athlete_id":"a2"}`)

			Convey("Then membership flips on", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var resp struct {
					Watched bool `json:"watched"`
				}
				So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
				So(resp.Watched, ShouldBeTrue)
			})
		})

		Convey("When toggling an unknown athlete", func() {
			w := do(mux, "POST", "/watchlist/r1", `{"athlete_id":"nobody"}`)
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("When saving and reading a note", func() {
			put := do(mux, "PUT", "/notes/r1/a1", `{"text":"Elite arm talent"}`)
			So(put.Code, ShouldEqual, http.StatusOK)

			get := do(mux, "GET", "/notes/r1", "")
			So(get.Code, ShouldEqual, http.StatusOK)

			var notes map[string]string
			So(json.Unmarshal(get.Body.Bytes(), &notes), ShouldBeNil)
			So(notes["a1"], ShouldEqual, "Elite arm talent")
		})

		Convey("When the recruiter is unknown", func() {
			w := do(mux, "GET", "/watchlist/r9", "")
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestSettingsEndpoints(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		mux, _ := newMux(t)

		Convey("When reading settings for a role", func() {
			w := do(mux, "GET", "/settings/recruiter", "")

			Convey("Then the computed defaults apply", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var s model.Settings
				So(json.Unmarshal(w.Body.Bytes(), &s), ShouldBeNil)
				So(s.Notifications["watchlist_activity"], ShouldBeTrue)
			})
		})

		Convey("When updating settings", func() {
			put := do(mux, "PUT", "/settings/athlete", `{"theme":"light","accent":"navy"}`)
			So(put.Code, ShouldEqual, http.StatusOK)

			Convey("Then the stored value wins on the next read", func() {
				get := do(mux, "GET", "/settings/athlete", "")
				So(get.Code, ShouldEqual, http.StatusOK)

				var s model.Settings
				So(json.Unmarshal(get.Body.Bytes(), &s), ShouldBeNil)
				So(s.Theme, ShouldEqual, "light")
			})
		})

		Convey("When the role is unknown", func() {
			w := do(mux, "GET", "/settings/janitor", "")
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestExportEndpoint(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		mux, _ := newMux(t)

		Convey("When exporting an athlete's history", func() {
			w := do(mux, "GET", "/export/a1", "")

			Convey("Then a CSV with a header row comes back", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldStartWith, "text/csv")

				lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
				So(lines[0], ShouldEqual, "id,date,type,duration_minutes,verified")
				So(lines, ShouldHaveLength, 4)
			})
		})

		Convey("When the athlete does not exist", func() {
			w := do(mux, "GET", "/export/nobody", "")
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}
