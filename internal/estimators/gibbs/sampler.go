package gibbs

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/custodia-labs/topica/internal/core/domain"
)

// token is one occurrence of a term in a document.
type token struct {
	doc, term int
}

type sampler struct {
	numTopics  int
	numTerms   int
	alpha, eta float64
	rnd        *rand.Rand

	tokens []token
	z      []int // topic of each token

	nwk *mat.Dense // terms x topics
	ndk *mat.Dense // documents x topics
	nk  []float64  // tokens per topic
	nd  []float64  // tokens per document

	cumsum []float64
}

func newSampler(docs, terms int, opts domain.ModelOptions, rnd *rand.Rand) *sampler {
	k := opts.NumTopics
	s := &sampler{
		numTopics: k,
		numTerms:  terms,
		alpha:     opts.Alpha,
		eta:       opts.Eta,
		rnd:       rnd,
		nwk:       mat.NewDense(terms, k, nil),
		nk:        make([]float64, k),
		nd:        make([]float64, docs),
		cumsum:    make([]float64, k),
	}
	if docs > 0 {
		s.ndk = mat.NewDense(docs, k, nil)
	}
	return s
}

// expand lists every token of dtm, documents in order and terms in column order.
func (s *sampler) expand(dtm *domain.DocumentTermMatrix) {
	docs, _ := dtm.Dims()
	for d := 0; d < docs; d++ {
		for w, n := range dtm.RawRow(d) {
			for i := 0; i < int(n); i++ {
				s.tokens = append(s.tokens, token{doc: d, term: w})
			}
			s.nd[d] += float64(int(n))
		}
	}
	s.z = make([]int, len(s.tokens))
}

// init randomly assigns a topic to every token and counts them.
func (s *sampler) init(dtm *domain.DocumentTermMatrix) {
	s.expand(dtm)
	for i, tok := range s.tokens {
		k := s.rnd.Intn(s.numTopics)
		s.z[i] = k
		s.add(tok, k, 1, true)
	}
}

// initFixed assigns topics for fold-in without touching topic-word counts.
func (s *sampler) initFixed(dtm *domain.DocumentTermMatrix) {
	s.expand(dtm)
	for i, tok := range s.tokens {
		k := s.rnd.Intn(s.numTopics)
		s.z[i] = k
		s.add(tok, k, 1, false)
	}
}

func (s *sampler) add(tok token, k int, delta float64, words bool) {
	s.ndk.Set(tok.doc, k, s.ndk.At(tok.doc, k)+delta)
	if words {
		s.nwk.Set(tok.term, k, s.nwk.At(tok.term, k)+delta)
		s.nk[k] += delta
	}
}

// sweep resamples the topic of every token once. When words is false the
// topic-word counts are held fixed.
func (s *sampler) sweep(words bool) {
	vEta := float64(s.numTerms) * s.eta
	for i, tok := range s.tokens {
		k := s.z[i]
		s.add(tok, k, -1, words)

		for kidx := 0; kidx < s.numTopics; kidx++ {
			docPart := s.alpha + s.ndk.At(tok.doc, kidx)
			wordPart := (s.eta + s.nwk.At(tok.term, kidx)) / (s.nk[kidx] + vEta)
			p := docPart * wordPart
			if kidx > 0 {
				p += s.cumsum[kidx-1]
			}
			s.cumsum[kidx] = p
		}

		u := s.rnd.Float64() * s.cumsum[s.numTopics-1]
		k = s.numTopics - 1
		for kidx := 0; kidx < s.numTopics; kidx++ {
			if u < s.cumsum[kidx] {
				k = kidx
				break
			}
		}

		s.z[i] = k
		s.add(tok, k, 1, words)
	}
}

// phi returns the topics x terms posterior estimate.
func (s *sampler) phi() *mat.Dense {
	phi := mat.NewDense(s.numTopics, s.numTerms, nil)
	vEta := float64(s.numTerms) * s.eta
	for k := 0; k < s.numTopics; k++ {
		for w := 0; w < s.numTerms; w++ {
			phi.Set(k, w, (s.nwk.At(w, k)+s.eta)/(s.nk[k]+vEta))
		}
	}
	return phi
}

// theta returns the documents x topics posterior estimate.
func (s *sampler) theta() *mat.Dense {
	docs := len(s.nd)
	if docs == 0 {
		return nil
	}
	theta := mat.NewDense(docs, s.numTopics, nil)
	kAlpha := float64(s.numTopics) * s.alpha
	for d := 0; d < docs; d++ {
		for k := 0; k < s.numTopics; k++ {
			theta.Set(d, k, (s.ndk.At(d, k)+s.alpha)/(s.nd[d]+kAlpha))
		}
	}
	return theta
}

// logLikelihood is the log probability of the tokens under the current estimates.
func (s *sampler) logLikelihood() float64 {
	phi := s.phi()
	theta := s.theta()
	var sum float64
	for _, tok := range s.tokens {
		var p float64
		for k := 0; k < s.numTopics; k++ {
			p += phi.At(k, tok.term) * theta.At(tok.doc, k)
		}
		sum += math.Log(p)
	}
	return sum
}
