package manifest

import (
	"fmt"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

// KubeConfig loads a kubeconfig file and resolves its current context into
// a *rest.Config.
type KubeConfig struct{}

// Load implements assetcache.Loader.
func (KubeConfig) Load(path string, fs billy.Filesystem) (*rest.Config, error) {
	content, err := util.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	cfg, err := clientcmd.RESTConfigFromKubeConfig(content)
	if err != nil {
		return nil, fmt.Errorf("build rest config from %s: %w", path, err)
	}
	return cfg, nil
}
