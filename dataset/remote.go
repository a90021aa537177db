package dataset

import (
	"bytes"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/matryer/try"
)

const maxIntentos = 5

var (
	// http client
	cliente = &http.Client{
		Timeout: time.Second * 40,
		Transport: &http.Transport{
			Dial: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).Dial,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}
)

// CargarFuente loads the dataset from a local path or an http(s) URL.
// Remote sources are downloaded with retries before parsing.
func CargarFuente(fuente string) (Dataset, error) {
	if !strings.HasPrefix(fuente, "http") {
		return CargarArchivo(fuente)
	}
	cuerpo := new(bytes.Buffer)
	err := try.Do(func(intento int) (bool, error) {
		cuerpo.Reset()
		return intento < maxIntentos, Descargar(fuente, cuerpo)
	})
	if err != nil {
		return nil, errorCarga("falla al descargar el dataset de la url %s, error %q", fuente, err)
	}
	return Cargar(cuerpo, fuente)
}

// Descargar downloads a file and writes it on the given writer, showing a
// progress bar when the server announces the content length.
func Descargar(url string, w io.Writer) error {
	res, err := cliente.Get(url)
	if err != nil {
		return fmt.Errorf("problema al descargar el archivo de la url %s, error %q", url, err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("el servidor respondió %d al pedir la url %s", res.StatusCode, url)
	}
	tamano, err := strconv.Atoi(res.Header.Get("content-length"))
	if err != nil {
		// sin content-length no hay barra de progreso
		if _, err := io.Copy(w, res.Body); err != nil {
			return fmt.Errorf("falla al copiar los bytes de la respuesta, error %q", err)
		}
		return nil
	}
	barra := pb.Full.Start64(int64(tamano))
	lector := barra.NewProxyReader(io.LimitReader(res.Body, int64(tamano)))
	if _, err := io.Copy(w, lector); err != nil {
		return fmt.Errorf("falla al copiar los bytes del proxy reader, error %q", err)
	}
	barra.Finish()
	return nil
}
