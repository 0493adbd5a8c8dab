package cli

const (
	msgBye              = " *** SALISTE DEL PROGRAMA... *** "
	msgInvalidOption    = " ---> Opción inválida. Intente de nuevo."
	msgInvalidID        = " ---> ID inválido: debe ser un número entero."
	msgInvalidNumber    = " ---> Valor inválido: ingrese un número (ej. 1250.50). Intente de nuevo."
	msgNotFound         = " ---> No se encontró un producto con el ID especificado."
	msgNoSearchResults  = " ---> No se encontraron productos con la descripción ingresada."
	msgEmptyCatalogue   = " ---> No hay productos cargados."
	msgUpdated          = "\n¡Producto actualizado con éxito!"
	headerFound         = "\n PRODUCTOS ENCONTRADOS: "
	headerDetails       = "\n DETALLES DEL PRODUCTO: "
	headerUpdateDetails = "\nDETALLES DEL PRODUCTO A ACTUALIZAR:"
	headerList          = "*** LISTA DE TODOS LOS PRODUCTOS ***"
)
