package internal

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"vinti4/config"
	"vinti4/entity"
	"vinti4/services"
)

const (
	purchasePayment = "/payment/purchase"
	servicePayment  = "/payment/service"
	rechargePayment = "/payment/recharge"
	refundPayment   = "/payment/refund"
	paymentResponse = "/payment/response"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	payments   services.Payments
	logger     services.LogHandler
}

func NewServer(conf *config.Config) *Server {

	server := Server{
		conf: conf,
	}

	// register itself as a router for httpServer handler
	router := httprouter.New()
	server.Register(router)
	server.httpServer = &http.Server{
		Handler: router,
	}

	return &server
}

func (s *Server) Register(router *httprouter.Router) {
	router.POST(purchasePayment, s.purchase)
	router.POST(servicePayment, s.servicePayment)
	router.POST(rechargePayment, s.recharge)
	router.POST(refundPayment, s.refund)
	router.POST(paymentResponse, s.paymentResponse)
}

func (s *Server) SetPaymentsService(payments services.Payments) {
	s.payments = payments
}

func (s *Server) SetLogger(logger services.LogHandler) {
	s.logger = logger
}

func (s *Server) Start() error {
	if s.conf == nil {
		return fmt.Errorf("configuration not loaded")
	}

	serverAddress := fmt.Sprintf("%s:%s", s.conf.Listen.BindIP, s.conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	if s.conf.Listen.TLS {
		s.logger.Info(fmt.Sprintf("starting https TLS on %s", serverAddress))
		err = s.httpServer.ServeTLS(listener, s.conf.Listen.CertFile, s.conf.Listen.KeyFile)
	} else {
		s.logger.Info(fmt.Sprintf("starting http on %s", serverAddress))
		err = s.httpServer.Serve(listener)
	}

	return err
}

func (s *Server) purchase(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	var params entity.PurchaseParams
	if !s.decodeParams(w, r, reqID, &params) {
		return
	}

	form, err := s.payments.Purchase(ctx, &params)
	if err != nil {
		s.logger.Error(fmt.Sprintf("[%s] purchase", reqID), err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	s.writeForm(w, reqID, form)
}

func (s *Server) servicePayment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	var params entity.ServiceParams
	if !s.decodeParams(w, r, reqID, &params) {
		return
	}

	form, err := s.payments.ServicePayment(ctx, &params)
	if err != nil {
		s.logger.Error(fmt.Sprintf("[%s] service payment", reqID), err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	s.writeForm(w, reqID, form)
}

func (s *Server) recharge(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	var params entity.ServiceParams
	if !s.decodeParams(w, r, reqID, &params) {
		return
	}

	form, err := s.payments.Recharge(ctx, &params)
	if err != nil {
		s.logger.Error(fmt.Sprintf("[%s] recharge", reqID), err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	s.writeForm(w, reqID, form)
}

func (s *Server) refund(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	var params entity.RefundParams
	if !s.decodeParams(w, r, reqID, &params) {
		return
	}

	s.logger.Info(fmt.Sprintf("[%s] processing refund: ref %s, amount %v", reqID, params.MerchantRef, params.Amount))
	form, err := s.payments.Refund(ctx, &params)
	if err != nil {
		s.logger.Error(fmt.Sprintf("[%s] refund %s", reqID, params.MerchantRef), err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	s.writeForm(w, reqID, form)
}

// paymentResponse receives the gateway POST-back. The gateway must always
// get a handled response, so classification failures still answer 200 with
// a normalized result.
func (s *Server) paymentResponse(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.logger.Error(fmt.Sprintf("[%s] payment response: get body", reqID), err)
		w.WriteHeader(http.StatusOK)
		return
	}

	result, err := s.payments.Notify(ctx, body)
	if err != nil {
		s.logger.Error(fmt.Sprintf("[%s] payment response: process body", reqID), err)
		w.WriteHeader(http.StatusOK)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err = json.NewEncoder(w).Encode(result); err != nil {
		s.logger.Error(fmt.Sprintf("[%s] payment response: encode result", reqID), err)
	}
}

func (s *Server) decodeParams(w http.ResponseWriter, r *http.Request, reqID string, params any) bool {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.logger.Error(fmt.Sprintf("[%s] read request body", reqID), err)
		w.WriteHeader(http.StatusBadRequest)
		return false
	}
	if err = json.Unmarshal(body, params); err != nil {
		s.logger.Error(fmt.Sprintf("[%s] decode request body", reqID), err)
		w.WriteHeader(http.StatusBadRequest)
		return false
	}
	return true
}

func (s *Server) writeForm(w http.ResponseWriter, reqID string, form *entity.PaymentForm) {
	page, err := RenderPaymentForm(form)
	if err != nil {
		s.logger.Error(fmt.Sprintf("[%s] render payment form", reqID), err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err = w.Write([]byte(page)); err != nil {
		s.logger.Error(fmt.Sprintf("[%s] write payment form", reqID), err)
	}
}
