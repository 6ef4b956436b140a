package trivia

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var quizDraws = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "trivia_quiz_draws_total",
	Help: "Quiz draw outcomes: question served or pool exhausted.",
}, []string{"outcome"})

const (
	drawOutcomeQuestion  = "question"
	drawOutcomeExhausted = "exhausted"
)
